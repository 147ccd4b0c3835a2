package autotranslate

import "github.com/camarabr/chamber-cms/blocks"

// FieldGroup is the unit of independent debouncing and translation tracking.
type FieldGroup string

const (
	GroupTitle   FieldGroup = "title"
	GroupExcerpt FieldGroup = "excerpt"
	GroupBlocks  FieldGroup = "blocks"
)

// GroupState describes where a field group sits in the translation pipeline.
type GroupState string

const (
	// StateIdle means no pending timer and no in-flight request.
	StateIdle GroupState = "idle"
	// StatePending means an edit armed the debounce timer; a newer edit
	// replaces the timer, so only the last value in a burst translates.
	StatePending GroupState = "pending"
	// StateInFlight means the RU and EN calls were issued and the group is
	// waiting for both to settle.
	StateInFlight GroupState = "in-flight"
)

// Form is the three-language article aggregate the orchestrator operates on.
// Portuguese is the source of truth; Russian and English start empty and are
// either machine-translated or hand-edited when auto-translation is off.
type Form struct {
	TitlePT   string
	TitleRU   string
	TitleEN   string
	ExcerptPT string
	ExcerptRU string
	ExcerptEN string
	BlocksPT  []blocks.Block
	BlocksRU  []blocks.Block
	BlocksEN  []blocks.Block
}

// Clone deep-copies the form, including all three block sequences.
func (f Form) Clone() Form {
	out := f
	out.BlocksPT = blocks.Clone(f.BlocksPT)
	out.BlocksRU = blocks.Clone(f.BlocksRU)
	out.BlocksEN = blocks.Clone(f.BlocksEN)
	return out
}

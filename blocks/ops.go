package blocks

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultHeadingLevel is applied when a heading block is created or decoded
// without an explicit level.
const DefaultHeadingLevel = 2

// Direction selects the neighbour a block swaps with when moved.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// IDGenerator produces opaque block identifiers, unique within a sequence.
type IDGenerator func() string

// Factory creates blocks with deterministic ids when configured with a fixed
// clock and random source, which the tests rely on.
type Factory struct {
	now  func() time.Time
	rand func() string
}

// FactoryOption customises block creation.
type FactoryOption func(*Factory)

// WithClock overrides the clock embedded in generated ids.
func WithClock(clock func() time.Time) FactoryOption {
	return func(f *Factory) {
		if clock != nil {
			f.now = clock
		}
	}
}

// WithRandom overrides the random suffix source for generated ids.
func WithRandom(random func() string) FactoryOption {
	return func(f *Factory) {
		if random != nil {
			f.rand = random
		}
	}
}

// NewFactory creates a block factory.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		now: time.Now,
		rand: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// New creates a block of the given type with a generated id, empty content,
// and the variant's default metadata: headings level 2, lists one empty item.
func (f *Factory) New(t Type) Block {
	b := Block{
		ID:   fmt.Sprintf("block-%d-%s", f.now().UnixMilli(), f.rand()),
		Type: t,
	}
	switch t {
	case TypeHeading:
		b.Meta = HeadingMeta{Level: DefaultHeadingLevel}
	case TypeList, TypeOrderedList:
		b.Meta = ListMeta{Items: []string{""}}
	case TypeImage:
		b.Meta = ImageMeta{}
	}
	return b
}

// New creates a block using a throwaway default factory. Editors hold their
// own factory so ids stay deterministic under test clocks.
func New(t Type) Block {
	return NewFactory().New(t)
}

// Patch describes a partial update. Nil fields leave the current value
// untouched; fields that do not apply to the block's variant are ignored.
type Patch struct {
	Content     *string
	Level       *int
	Alt         *string
	Caption     *string
	IsLocalFile *bool
	Items       []string
}

// Update returns a new sequence with the matching block's content and
// metadata merged with the patch. The input is never mutated; an unknown id
// yields the input sequence unchanged (same backing array, safe because
// nothing was written).
func Update(seq []Block, id string, patch Patch) []Block {
	idx := indexOf(seq, id)
	if idx < 0 {
		return seq
	}

	out := Clone(seq)
	b := &out[idx]

	if patch.Content != nil {
		b.Content = *patch.Content
	}

	switch meta := b.Meta.(type) {
	case HeadingMeta:
		if patch.Level != nil && *patch.Level >= 1 && *patch.Level <= 3 {
			meta.Level = *patch.Level
		}
		b.Meta = meta
	case ImageMeta:
		if patch.Alt != nil {
			meta.Alt = *patch.Alt
		}
		if patch.Caption != nil {
			meta.Caption = *patch.Caption
		}
		if patch.IsLocalFile != nil {
			meta.IsLocalFile = *patch.IsLocalFile
		}
		b.Meta = meta
	case ListMeta:
		if patch.Items != nil {
			meta.Items = normalizeItems(patch.Items)
		}
		b.Meta = meta
	}

	return out
}

// Delete returns the sequence without the matching block; no-op when the id
// is absent.
func Delete(seq []Block, id string) []Block {
	idx := indexOf(seq, id)
	if idx < 0 {
		return seq
	}
	out := make([]Block, 0, len(seq)-1)
	for i, b := range seq {
		if i == idx {
			continue
		}
		out = append(out, cloneBlock(b))
	}
	return out
}

// Move swaps the matching block with its neighbour in the given direction.
// Moving the first block up or the last block down is a no-op.
func Move(seq []Block, id string, dir Direction) []Block {
	idx := indexOf(seq, id)
	if idx < 0 {
		return seq
	}

	switch dir {
	case MoveUp:
		if idx == 0 {
			return seq
		}
		out := Clone(seq)
		out[idx], out[idx-1] = out[idx-1], out[idx]
		return out
	case MoveDown:
		if idx == len(seq)-1 {
			return seq
		}
		out := Clone(seq)
		out[idx], out[idx+1] = out[idx+1], out[idx]
		return out
	}
	return seq
}

// AppendItem returns the sequence with one empty item appended to the
// matching list block.
func AppendItem(seq []Block, id string) []Block {
	idx := indexOf(seq, id)
	if idx < 0 {
		return seq
	}
	meta, ok := seq[idx].Meta.(ListMeta)
	if !ok {
		return seq
	}
	items := append(append([]string(nil), meta.Items...), "")
	return Update(seq, id, Patch{Items: items})
}

// SetItem returns the sequence with the list item at position i replaced.
func SetItem(seq []Block, id string, i int, value string) []Block {
	idx := indexOf(seq, id)
	if idx < 0 {
		return seq
	}
	meta, ok := seq[idx].Meta.(ListMeta)
	if !ok || i < 0 || i >= len(meta.Items) {
		return seq
	}
	items := append([]string(nil), meta.Items...)
	items[i] = value
	return Update(seq, id, Patch{Items: items})
}

// RemoveItem returns the sequence with the list item at position i removed.
// The first item is not removable, so the list never goes empty.
func RemoveItem(seq []Block, id string, i int) []Block {
	idx := indexOf(seq, id)
	if idx < 0 {
		return seq
	}
	meta, ok := seq[idx].Meta.(ListMeta)
	if !ok || i <= 0 || i >= len(meta.Items) {
		return seq
	}
	items := make([]string, 0, len(meta.Items)-1)
	for j, item := range meta.Items {
		if j == i {
			continue
		}
		items = append(items, item)
	}
	return Update(seq, id, Patch{Items: items})
}

// Clone deep-copies a sequence so the result can be mutated without touching
// the original.
func Clone(seq []Block) []Block {
	if seq == nil {
		return nil
	}
	out := make([]Block, len(seq))
	for i, b := range seq {
		out[i] = cloneBlock(b)
	}
	return out
}

func cloneBlock(b Block) Block {
	if meta, ok := b.Meta.(ListMeta); ok {
		items := make([]string, len(meta.Items))
		copy(items, meta.Items)
		b.Meta = ListMeta{Items: items}
	}
	return b
}

func indexOf(seq []Block, id string) int {
	for i, b := range seq {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func normalizeItems(items []string) []string {
	if len(items) == 0 {
		return []string{""}
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}

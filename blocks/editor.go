package blocks

import (
	"sync"

	"github.com/camarabr/chamber-cms/internal/logging"
	"github.com/camarabr/chamber-cms/media"
	"github.com/camarabr/chamber-cms/pkg/interfaces"
)

// ChangeFunc receives the full new sequence after every mutation.
type ChangeFunc func([]Block)

// Editor binds one block sequence to mutation operations plus a change
// notification. Each article language gets its own instance.
//
// Image selection is split from upload: SelectImage stores the raw file and
// swaps the block content to an inline preview immediately, so the editing
// surface stays responsive; the durable upload happens later in the save
// pass, which replaces the preview with the permanent URL.
type Editor struct {
	mu       sync.Mutex
	blocks   []Block
	pending  map[string]media.File
	onChange ChangeFunc
	factory  *Factory
	logger   interfaces.Logger
}

// EditorOption customises editor construction.
type EditorOption func(*Editor)

// WithOnChange registers the change notification callback.
func WithOnChange(fn ChangeFunc) EditorOption {
	return func(e *Editor) {
		e.onChange = fn
	}
}

// WithFactory overrides the block factory, mainly to pin ids in tests.
func WithFactory(f *Factory) EditorOption {
	return func(e *Editor) {
		if f != nil {
			e.factory = f
		}
	}
}

// WithLogger attaches a logger provider to the editor.
func WithLogger(provider interfaces.LoggerProvider) EditorOption {
	return func(e *Editor) {
		e.logger = logging.BlocksLogger(provider)
	}
}

// NewEditor creates an editor over a copy of the initial sequence.
func NewEditor(initial []Block, opts ...EditorOption) *Editor {
	e := &Editor{
		blocks:  Clone(initial),
		pending: make(map[string]media.File),
		factory: NewFactory(),
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Blocks returns a copy of the current sequence.
func (e *Editor) Blocks() []Block {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Clone(e.blocks)
}

// Replace swaps in an externally produced sequence, e.g. after the
// auto-translation pipeline rewrites a language variant.
func (e *Editor) Replace(seq []Block) {
	e.mu.Lock()
	e.blocks = Clone(seq)
	e.mu.Unlock()
	e.notify()
}

// Add appends a new block of the given type and returns it.
func (e *Editor) Add(t Type) Block {
	e.mu.Lock()
	b := e.factory.New(t)
	e.blocks = append(Clone(e.blocks), b)
	e.mu.Unlock()

	e.logger.Debug("block added", "block_id", b.ID, "type", string(t))
	e.notify()
	return b
}

// Update applies a partial patch to the matching block.
func (e *Editor) Update(id string, patch Patch) {
	e.mu.Lock()
	e.blocks = Update(e.blocks, id, patch)
	e.mu.Unlock()
	e.notify()
}

// Delete removes the matching block and discards any pending image for it.
func (e *Editor) Delete(id string) {
	e.mu.Lock()
	e.blocks = Delete(e.blocks, id)
	delete(e.pending, id)
	e.mu.Unlock()
	e.notify()
}

// Move swaps the block with its neighbour; boundary moves are no-ops.
func (e *Editor) Move(id string, dir Direction) {
	e.mu.Lock()
	e.blocks = Move(e.blocks, id, dir)
	e.mu.Unlock()
	e.notify()
}

// AppendItem adds an empty row to a list block.
func (e *Editor) AppendItem(id string) {
	e.mu.Lock()
	e.blocks = AppendItem(e.blocks, id)
	e.mu.Unlock()
	e.notify()
}

// SetItem replaces one row of a list block.
func (e *Editor) SetItem(id string, index int, value string) {
	e.mu.Lock()
	e.blocks = SetItem(e.blocks, id, index, value)
	e.mu.Unlock()
	e.notify()
}

// RemoveItem drops one row of a list block; the first row stays.
func (e *Editor) RemoveItem(id string, index int) {
	e.mu.Lock()
	e.blocks = RemoveItem(e.blocks, id, index)
	e.mu.Unlock()
	e.notify()
}

// SelectImage validates the file, stores it for the save pass, and swaps the
// block content to an inline preview marked as a local file.
func (e *Editor) SelectImage(id string, file media.File) error {
	if err := file.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	if indexOf(e.blocks, id) < 0 {
		e.mu.Unlock()
		return nil
	}
	preview := file.DataURI()
	local := true
	e.blocks = Update(e.blocks, id, Patch{Content: &preview, IsLocalFile: &local})
	e.pending[id] = file
	e.mu.Unlock()

	e.logger.Debug("image selected", "block_id", id, "size", len(file.Data))
	e.notify()
	return nil
}

// PendingImage returns the unsaved file selected for the block, if any.
func (e *Editor) PendingImage(id string) (media.File, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	f, ok := e.pending[id]
	return f, ok
}

// PendingImages returns all unsaved image selections keyed by block id.
func (e *Editor) PendingImages() map[string]media.File {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]media.File, len(e.pending))
	for id, f := range e.pending {
		out[id] = f
	}
	return out
}

// ClearPending drops the stored file for a block once its upload completed.
func (e *Editor) ClearPending(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.pending, id)
}

func (e *Editor) notify() {
	if e.onChange == nil {
		return
	}
	e.onChange(e.Blocks())
}

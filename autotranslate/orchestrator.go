// Package autotranslate keeps the Russian and English fields of an article
// synchronized with Portuguese edits. Each field group (title, excerpt,
// content blocks) debounces independently; when its timer elapses the RU and
// EN translation calls are issued together, merged back on arrival, and any
// failure degrades to the untranslated source text for the affected pieces.
package autotranslate

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/camarabr/chamber-cms/blocks"
	"github.com/camarabr/chamber-cms/internal/debounce"
	"github.com/camarabr/chamber-cms/internal/logging"
	"github.com/camarabr/chamber-cms/pkg/interfaces"
	"github.com/camarabr/chamber-cms/translate"
)

// Default debounce windows per field group. Titles settle fastest; block
// content waits longest because its bursts are longer.
const (
	DefaultTitleDebounce   = 1000 * time.Millisecond
	DefaultExcerptDebounce = 1500 * time.Millisecond
	DefaultBlocksDebounce  = 2000 * time.Millisecond
)

// ErrFieldMachineOwned is returned when a RU/EN field is edited manually
// while auto-translation is enabled; those fields belong to the pipeline
// until the toggle is switched off.
var ErrFieldMachineOwned = errors.New("autotranslate: field is machine-owned while auto-translate is enabled")

// StateFunc observes group state transitions, e.g. to drive spinners. It is
// invoked with the orchestrator's internal lock held and must not call back
// into the orchestrator.
type StateFunc func(group FieldGroup, state GroupState)

// ErrorFunc receives the user-facing message for a failed translation pass.
type ErrorFunc func(group FieldGroup, message string)

// Orchestrator drives the per-field-group translation state machine. All
// methods are safe for concurrent use; merges from completed calls go through
// the same mutex as user edits, so interleaved arrivals stay deterministic.
type Orchestrator struct {
	mu      sync.Mutex
	form    Form
	enabled bool
	state   map[FieldGroup]GroupState
	gen     map[FieldGroup]uint64

	client translate.Client
	sched  debounce.Scheduler
	delays map[FieldGroup]time.Duration

	ctx     context.Context
	onState StateFunc
	onError ErrorFunc
	logger  interfaces.Logger

	inflight sync.WaitGroup
}

// Option customises the orchestrator.
type Option func(*Orchestrator)

// WithScheduler overrides the debounce timer service; tests use the manual
// implementation to fire timers deterministically.
func WithScheduler(s debounce.Scheduler) Option {
	return func(o *Orchestrator) {
		if s != nil {
			o.sched = s
		}
	}
}

// WithDebounce overrides the window for one field group.
func WithDebounce(group FieldGroup, d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.delays[group] = d
		}
	}
}

// WithStateFunc registers the state transition observer.
func WithStateFunc(fn StateFunc) Option {
	return func(o *Orchestrator) {
		o.onState = fn
	}
}

// WithErrorFunc registers the user-facing error sink.
func WithErrorFunc(fn ErrorFunc) Option {
	return func(o *Orchestrator) {
		o.onError = fn
	}
}

// WithLogger attaches a logger provider.
func WithLogger(provider interfaces.LoggerProvider) Option {
	return func(o *Orchestrator) {
		o.logger = logging.AutoTranslateLogger(provider)
	}
}

// WithContext sets the base context for translation calls, letting the host
// cancel in-flight work when the editing session closes.
func WithContext(ctx context.Context) Option {
	return func(o *Orchestrator) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// New creates an orchestrator for a new, empty article. Auto-translation
// starts enabled.
func New(client translate.Client, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		form:    Form{},
		enabled: true,
		state: map[FieldGroup]GroupState{
			GroupTitle:   StateIdle,
			GroupExcerpt: StateIdle,
			GroupBlocks:  StateIdle,
		},
		gen:    map[FieldGroup]uint64{},
		client: client,
		sched:  debounce.New(),
		delays: map[FieldGroup]time.Duration{
			GroupTitle:   DefaultTitleDebounce,
			GroupExcerpt: DefaultExcerptDebounce,
			GroupBlocks:  DefaultBlocksDebounce,
		},
		ctx:    context.Background(),
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewForArticle creates an orchestrator over an existing article's form.
// Auto-translation starts disabled so stored translations are not clobbered
// the moment the editor opens.
func NewForArticle(client translate.Client, form Form, opts ...Option) *Orchestrator {
	o := New(client, opts...)
	o.form = form.Clone()
	o.enabled = false
	return o
}

// Enabled reports whether the pipeline owns the RU/EN fields.
func (o *Orchestrator) Enabled() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.enabled
}

// SetAutoTranslate flips the toggle. Disabling cancels pending timers and
// invalidates in-flight generations so no automatic overwrite lands after
// the user takes manual control.
func (o *Orchestrator) SetAutoTranslate(enabled bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.enabled == enabled {
		return
	}
	o.enabled = enabled
	if !enabled {
		for _, g := range []FieldGroup{GroupTitle, GroupExcerpt, GroupBlocks} {
			o.gen[g]++
			o.sched.Cancel(string(g))
			o.setStateLocked(g, StateIdle)
		}
	}
}

// Snapshot returns a deep copy of the current form.
func (o *Orchestrator) Snapshot() Form {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.form.Clone()
}

// GroupState returns the pipeline state of one field group.
func (o *Orchestrator) GroupState(g FieldGroup) GroupState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state[g]
}

// Wait blocks until every translation pass whose timer has gone off has
// settled. Timers still counting down do not block it; Close settles the
// whole orchestrator.
func (o *Orchestrator) Wait() {
	o.inflight.Wait()
}

// Close shuts the orchestrator down: pending timers are cancelled, current
// generations are invalidated so no late merge lands, and in-flight passes
// are drained before it returns. The form keeps its last settled values.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	for _, g := range []FieldGroup{GroupTitle, GroupExcerpt, GroupBlocks} {
		o.gen[g]++
		o.sched.Cancel(string(g))
		o.setStateLocked(g, StateIdle)
	}
	o.mu.Unlock()
	o.inflight.Wait()
}

// SetTitlePT records a Portuguese title edit. A non-blank value arms the
// title debounce timer; a blank value immediately clears both translations,
// since an empty source means there is nothing to translate.
func (o *Orchestrator) SetTitlePT(text string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.form.TitlePT = text
	if !o.enabled {
		return
	}

	o.gen[GroupTitle]++
	if strings.TrimSpace(text) == "" {
		o.form.TitleRU = ""
		o.form.TitleEN = ""
		o.sched.Cancel(string(GroupTitle))
		o.setStateLocked(GroupTitle, StateIdle)
		return
	}
	o.armLocked(GroupTitle)
}

// SetExcerptPT records a Portuguese excerpt edit; same pattern as the title.
func (o *Orchestrator) SetExcerptPT(text string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.form.ExcerptPT = text
	if !o.enabled {
		return
	}

	o.gen[GroupExcerpt]++
	if strings.TrimSpace(text) == "" {
		o.form.ExcerptRU = ""
		o.form.ExcerptEN = ""
		o.sched.Cancel(string(GroupExcerpt))
		o.setStateLocked(GroupExcerpt, StateIdle)
		return
	}
	o.armLocked(GroupExcerpt)
}

// SetBlocksPT records a Portuguese block sequence edit. An empty sequence
// clears both translated sequences.
func (o *Orchestrator) SetBlocksPT(seq []blocks.Block) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.form.BlocksPT = blocks.Clone(seq)
	if !o.enabled {
		return
	}

	o.gen[GroupBlocks]++
	if len(seq) == 0 {
		o.form.BlocksRU = nil
		o.form.BlocksEN = nil
		o.sched.Cancel(string(GroupBlocks))
		o.setStateLocked(GroupBlocks, StateIdle)
		return
	}
	o.armLocked(GroupBlocks)
}

// SetTitleRU hand-edits the Russian title; rejected while auto-translate
// owns the field.
func (o *Orchestrator) SetTitleRU(text string) error {
	return o.setManual(func() { o.form.TitleRU = text })
}

// SetTitleEN hand-edits the English title.
func (o *Orchestrator) SetTitleEN(text string) error {
	return o.setManual(func() { o.form.TitleEN = text })
}

// SetExcerptRU hand-edits the Russian excerpt.
func (o *Orchestrator) SetExcerptRU(text string) error {
	return o.setManual(func() { o.form.ExcerptRU = text })
}

// SetExcerptEN hand-edits the English excerpt.
func (o *Orchestrator) SetExcerptEN(text string) error {
	return o.setManual(func() { o.form.ExcerptEN = text })
}

// SetBlocksRU hand-edits the Russian block sequence.
func (o *Orchestrator) SetBlocksRU(seq []blocks.Block) error {
	return o.setManual(func() { o.form.BlocksRU = blocks.Clone(seq) })
}

// SetBlocksEN hand-edits the English block sequence.
func (o *Orchestrator) SetBlocksEN(seq []blocks.Block) error {
	return o.setManual(func() { o.form.BlocksEN = blocks.Clone(seq) })
}

func (o *Orchestrator) setManual(apply func()) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.enabled {
		return ErrFieldMachineOwned
	}
	apply()
	return nil
}

// armLocked replaces the group's debounce timer with one for the current
// generation. Caller holds the mutex.
func (o *Orchestrator) armLocked(g FieldGroup) {
	gen := o.gen[g]
	o.setStateLocked(g, StatePending)
	o.sched.Arm(string(g), o.delays[g], func() {
		// Counted before fire contends for the mutex, so Wait covers the
		// pass from the moment its timer goes off.
		o.inflight.Add(1)
		defer o.inflight.Done()
		o.fire(g, gen)
	})
}

// fire runs one translation pass for the group. It re-reads the source under
// the lock so the last edit in the burst wins, and drops its results if a
// newer edit bumped the generation while the calls were in flight.
func (o *Orchestrator) fire(g FieldGroup, gen uint64) {
	o.mu.Lock()
	if !o.enabled || o.gen[g] != gen {
		o.mu.Unlock()
		return
	}

	var (
		text string
		seq  []blocks.Block
	)
	switch g {
	case GroupTitle:
		text = o.form.TitlePT
	case GroupExcerpt:
		text = o.form.ExcerptPT
	case GroupBlocks:
		seq = blocks.Clone(o.form.BlocksPT)
	}
	o.setStateLocked(g, StateInFlight)
	o.mu.Unlock()

	switch g {
	case GroupTitle:
		o.translatePair(g, gen, text, translate.FieldTitle,
			func(f *Form, v string) { f.TitleRU = v },
			func(f *Form, v string) { f.TitleEN = v },
		)
	case GroupExcerpt:
		o.translatePair(g, gen, text, translate.FieldExcerpt,
			func(f *Form, v string) { f.ExcerptRU = v },
			func(f *Form, v string) { f.ExcerptEN = v },
		)
	case GroupBlocks:
		o.translateBlocks(gen, seq)
	}
}

// translatePair issues the RU and EN calls for a single text field together,
// waits for both, and merges whichever succeeded. One language failing never
// cancels the other.
func (o *Orchestrator) translatePair(g FieldGroup, gen uint64, text string, field translate.FieldType, applyRU, applyEN func(*Form, string)) {
	type result struct {
		lang  translate.Language
		value string
		err   error
	}

	results := make([]result, 2)
	var wg sync.WaitGroup
	for i, lang := range []translate.Language{translate.LanguageRU, translate.LanguageEN} {
		wg.Add(1)
		go func(i int, lang translate.Language) {
			defer wg.Done()
			value, err := o.client.Translate(o.ctx, translate.Request{
				Text:           text,
				TargetLanguage: lang,
				FieldType:      field,
			})
			results[i] = result{lang: lang, value: value, err: err}
		}(i, lang)
	}
	wg.Wait()

	o.mu.Lock()
	stale := o.gen[g] != gen
	failed := false
	if !stale {
		for _, res := range results {
			if res.err != nil {
				failed = true
				o.logger.Warn("translation failed",
					"group", string(g),
					"lang", string(res.lang),
					"error", res.err,
				)
				continue
			}
			if res.lang == translate.LanguageRU {
				applyRU(&o.form, res.value)
			} else {
				applyEN(&o.form, res.value)
			}
		}
		o.setStateLocked(g, StateIdle)
	}
	o.mu.Unlock()

	if stale {
		o.logger.Debug("discarded stale translation", "group", string(g))
		return
	}
	if failed {
		o.reportError(g)
	}
}

// translateBlocks builds the RU and EN sequences from the source sequence,
// one goroutine per target language. Failures are per block: a block whose
// call fails keeps its Portuguese text, so a partial pass still leaves a
// complete, hand-fixable sequence.
func (o *Orchestrator) translateBlocks(gen uint64, seq []blocks.Block) {
	var (
		wg       sync.WaitGroup
		ruSeq    []blocks.Block
		enSeq    []blocks.Block
		ruFailed int
		enFailed int
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		ruSeq, ruFailed = o.translateSequence(seq, translate.LanguageRU)
	}()
	go func() {
		defer wg.Done()
		enSeq, enFailed = o.translateSequence(seq, translate.LanguageEN)
	}()
	wg.Wait()

	o.mu.Lock()
	stale := o.gen[GroupBlocks] != gen
	if !stale {
		o.form.BlocksRU = ruSeq
		o.form.BlocksEN = enSeq
		o.setStateLocked(GroupBlocks, StateIdle)
	}
	o.mu.Unlock()

	if stale {
		o.logger.Debug("discarded stale translation", "group", string(GroupBlocks))
		return
	}
	if ruFailed+enFailed > 0 {
		o.logger.Warn("block translation partially failed",
			"ru_failures", ruFailed,
			"en_failures", enFailed,
			"blocks", len(seq),
		)
		o.reportError(GroupBlocks)
	}
}

// translateSequence translates one block sequence into the target language.
// Image content is a URL and never translated; captions and alt text are.
// Blank fragments are skipped.
func (o *Orchestrator) translateSequence(seq []blocks.Block, lang translate.Language) ([]blocks.Block, int) {
	out := blocks.Clone(seq)
	failures := 0

	for i := range out {
		b := &out[i]
		switch {
		case b.Type == blocks.TypeImage:
			meta, _ := b.Image()
			if strings.TrimSpace(meta.Caption) == "" {
				continue
			}
			caption, err := o.client.Translate(o.ctx, translate.Request{
				Text:           meta.Caption,
				TargetLanguage: lang,
				FieldType:      translate.FieldContent,
			})
			if err != nil {
				failures++
				continue
			}
			meta.Caption = caption
			b.Meta = meta

		case b.Type.IsList():
			items := b.Items()
			failed := false
			for j, item := range items {
				if strings.TrimSpace(item) == "" {
					continue
				}
				translated, err := o.client.Translate(o.ctx, translate.Request{
					Text:           item,
					TargetLanguage: lang,
					FieldType:      translate.FieldContent,
				})
				if err != nil {
					failed = true
					break
				}
				items[j] = translated
			}
			if failed {
				failures++
				continue
			}
			b.Meta = blocks.ListMeta{Items: items}

		default:
			if strings.TrimSpace(b.Content) == "" {
				continue
			}
			content, err := o.client.Translate(o.ctx, translate.Request{
				Text:           b.Content,
				TargetLanguage: lang,
				FieldType:      translate.FieldContent,
			})
			if err != nil {
				failures++
				continue
			}
			b.Content = content
		}
	}

	return out, failures
}

func (o *Orchestrator) setStateLocked(g FieldGroup, s GroupState) {
	if o.state[g] == s {
		return
	}
	o.state[g] = s
	if o.onState != nil {
		o.onState(g, s)
	}
}

func (o *Orchestrator) reportError(g FieldGroup) {
	if o.onError == nil {
		return
	}
	o.onError(g, errorMessage(g))
}

// errorMessage returns the Portuguese banner text shown to the editor.
func errorMessage(g FieldGroup) string {
	switch g {
	case GroupTitle:
		return "Erro ao traduzir título. Tente novamente."
	case GroupExcerpt:
		return "Erro ao traduzir resumo. Tente novamente."
	default:
		return "Erro ao traduzir conteúdo. Tente novamente."
	}
}

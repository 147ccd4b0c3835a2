package chambercms_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chambercms "github.com/camarabr/chamber-cms"
	"github.com/camarabr/chamber-cms/articles"
	"github.com/camarabr/chamber-cms/autotranslate"
	"github.com/camarabr/chamber-cms/blocks"
	"github.com/camarabr/chamber-cms/internal/debounce"
	"github.com/camarabr/chamber-cms/pkg/interfaces"
)

func TestNewRequiresTranslationEndpoint(t *testing.T) {
	_, err := chambercms.New(chambercms.DefaultConfig(), chambercms.Dependencies{})
	if !errors.Is(err, chambercms.ErrTranslationEndpointRequired) {
		t.Fatalf("expected ErrTranslationEndpointRequired, got %v", err)
	}
}

func testConfig() chambercms.Config {
	cfg := chambercms.DefaultConfig()
	cfg.Translation.Endpoint = "https://functions.test/translate-content"
	return cfg
}

func TestNewAssemblesMemoryBackedServices(t *testing.T) {
	module, err := chambercms.New(testConfig(), chambercms.Dependencies{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	ctx := context.Background()
	if _, err := module.Articles().List(ctx); err != nil {
		t.Fatalf("articles list: %v", err)
	}
	if _, err := module.Events().List(ctx); err != nil {
		t.Fatalf("events list: %v", err)
	}
	if _, err := module.Contact().List(ctx); err != nil {
		t.Fatalf("contact list: %v", err)
	}
	if _, err := module.Membership().List(ctx); err != nil {
		t.Fatalf("membership list: %v", err)
	}
	if module.Translator() == nil {
		t.Fatal("translator missing")
	}
}

func TestEditorSessionCarriesConfiguredDebounce(t *testing.T) {
	cfg := testConfig()
	cfg.Translation.TitleDebounce = 250 * time.Millisecond

	module, err := chambercms.New(cfg, chambercms.Dependencies{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	sched := debounce.NewManual()
	session := module.NewEditorSession(autotranslate.WithScheduler(sched))

	session.SetTitlePT("Acordo")
	if got := sched.Delay(string(autotranslate.GroupTitle)); got != 250*time.Millisecond {
		t.Fatalf("title debounce = %v, want 250ms", got)
	}
}

func TestOpenEditorSessionKeepsStoredForm(t *testing.T) {
	module, err := chambercms.New(testConfig(), chambercms.Dependencies{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	form := autotranslate.Form{
		TitlePT:  "Acordo",
		TitleRU:  "Соглашение",
		BlocksPT: []blocks.Block{{ID: "b1", Type: blocks.TypeParagraph, Content: "Texto"}},
	}
	session := module.OpenEditorSession(form)

	if session.Enabled() {
		t.Fatal("existing articles open with auto-translate off")
	}
	got := session.Snapshot()
	if got.TitleRU != "Соглашение" || len(got.BlocksPT) != 1 {
		t.Fatalf("stored form lost: %+v", got)
	}
}

// The editor flow end to end: Portuguese edits run through the orchestrator
// against a stub translation backend, and the assembled form is saved as a
// draft article with both translations populated.
func TestEditorSessionFormSavesAsDraftArticle(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Text           string `json:"text"`
			TargetLanguage string `json:"targetLanguage"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"translatedText": body.TargetLanguage + ":" + body.Text,
		})
	}))
	defer backend.Close()

	cfg := chambercms.DefaultConfig()
	cfg.Translation.Endpoint = backend.URL
	module, err := chambercms.New(cfg, chambercms.Dependencies{
		Session: interfaces.StaticSession("editor-token"),
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	sched := debounce.NewManual()
	session := module.NewEditorSession(autotranslate.WithScheduler(sched))

	session.SetTitlePT("Novo acordo comercial")
	session.SetExcerptPT("Resumo do acordo")
	session.SetBlocksPT([]blocks.Block{
		{ID: "b1", Type: blocks.TypeParagraph, Content: "Texto do artigo."},
	})

	for _, g := range []autotranslate.FieldGroup{
		autotranslate.GroupTitle,
		autotranslate.GroupExcerpt,
		autotranslate.GroupBlocks,
	} {
		if !sched.Fire(string(g)) {
			t.Fatalf("group %s had no pending pass", g)
		}
	}
	session.Wait()

	form := session.Snapshot()
	saved, err := module.Articles().Save(context.Background(), articles.SaveRequest{
		TitlePT:   form.TitlePT,
		TitleRU:   form.TitleRU,
		TitleEN:   form.TitleEN,
		ExcerptPT: form.ExcerptPT,
		ExcerptRU: form.ExcerptRU,
		ExcerptEN: form.ExcerptEN,
		BlocksPT:  form.BlocksPT,
		BlocksRU:  form.BlocksRU,
		BlocksEN:  form.BlocksEN,
		Author:    "Equipe da Câmara",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if saved.Slug != "novo-acordo-comercial" {
		t.Fatalf("slug = %q, want novo-acordo-comercial", saved.Slug)
	}
	if saved.TitleRU == nil || *saved.TitleRU != "ru:Novo acordo comercial" {
		t.Fatalf("title_ru = %v", saved.TitleRU)
	}
	if saved.TitleEN == nil || *saved.TitleEN != "en:Novo acordo comercial" {
		t.Fatalf("title_en = %v", saved.TitleEN)
	}
	if saved.ExcerptRU == nil || *saved.ExcerptRU != "ru:Resumo do acordo" {
		t.Fatalf("excerpt_ru = %v", saved.ExcerptRU)
	}
	if saved.ExcerptEN == nil || *saved.ExcerptEN != "en:Resumo do acordo" {
		t.Fatalf("excerpt_en = %v", saved.ExcerptEN)
	}
	if len(saved.ContentBlocksRU) != 1 || saved.ContentBlocksRU[0].Content != "ru:Texto do artigo." {
		t.Fatalf("content_blocks_ru = %+v", saved.ContentBlocksRU)
	}
	if len(saved.ContentBlocksEN) != 1 || saved.ContentBlocksEN[0].Content != "en:Texto do artigo." {
		t.Fatalf("content_blocks_en = %+v", saved.ContentBlocksEN)
	}
	if saved.Status != articles.StatusDraft || saved.IsPublished {
		t.Fatalf("status = %q (published=%v), want draft", saved.Status, saved.IsPublished)
	}
	if saved.PublishedAt != nil {
		t.Fatalf("published_at = %v, want nil", saved.PublishedAt)
	}
}

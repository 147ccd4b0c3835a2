// Package chambercms assembles the content services behind the chamber of
// commerce site: multilingual articles with block-structured bodies, events,
// reader comments, the contact inbox, membership applications, and the
// auto-translation pipeline that keeps Russian and English copies in step
// with Portuguese edits.
package chambercms

import (
	"github.com/uptrace/bun"

	"github.com/camarabr/chamber-cms/articles"
	"github.com/camarabr/chamber-cms/autotranslate"
	"github.com/camarabr/chamber-cms/comments"
	"github.com/camarabr/chamber-cms/contact"
	"github.com/camarabr/chamber-cms/events"
	"github.com/camarabr/chamber-cms/internal/logging/gologger"
	"github.com/camarabr/chamber-cms/media"
	"github.com/camarabr/chamber-cms/membership"
	"github.com/camarabr/chamber-cms/pkg/interfaces"
	"github.com/camarabr/chamber-cms/translate"
)

// Service contract re-exports for consumers of the module.
type (
	ArticleService    = articles.Service
	EventService      = events.Service
	CommentService    = comments.Service
	ContactService    = contact.Service
	MembershipService = membership.Service
	TranslateClient   = translate.Client
)

// Dependencies carries the external collaborators the host wires in. DB is
// optional: without it every repository runs in memory, which is the shape
// used by tests and local scaffolding. Uploader is required for article
// imagery; Session authenticates translation calls.
type Dependencies struct {
	DB       *bun.DB
	Uploader media.Uploader
	Session  interfaces.SessionProvider
	Webhooks interfaces.WebhookDispatcher
	Logger   interfaces.LoggerProvider
}

// Module is the top level runtime facade.
type Module struct {
	cfg    Config
	logger interfaces.LoggerProvider

	articles   articles.Service
	events     events.Service
	comments   comments.Service
	contact    contact.Service
	membership membership.Service
	translator translate.Client
}

// New assembles the module from configuration and host dependencies.
func New(cfg Config, deps Dependencies) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider := deps.Logger
	if provider == nil {
		built, err := gologger.NewProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	uploader := deps.Uploader
	if uploader == nil {
		uploader = media.NewMemoryUploader()
	}

	session := deps.Session
	if session == nil {
		session = interfaces.StaticSession("")
	}

	m := &Module{
		cfg:    cfg,
		logger: provider,
		translator: translate.NewHTTPClient(cfg.Translation.Endpoint, session,
			translate.WithLogger(provider),
		),
	}

	if deps.DB != nil {
		m.articles = articles.NewService(articles.NewBunArticleRepository(deps.DB), uploader,
			articles.WithLogger(provider))
		m.events = events.NewService(events.NewBunEventRepository(deps.DB),
			events.WithLogger(provider))
		m.comments = comments.NewService(comments.NewBunCommentRepository(deps.DB),
			comments.WithLogger(provider))
		m.contact = contact.NewService(contact.NewBunSubmissionRepository(deps.DB),
			contact.WithLogger(provider))
		m.membership = membership.NewService(membership.NewBunApplicationRepository(deps.DB),
			membership.WithLogger(provider),
			membership.WithWebhookDispatcher(deps.Webhooks))
	} else {
		m.articles = articles.NewService(articles.NewMemoryArticleRepository(), uploader,
			articles.WithLogger(provider))
		m.events = events.NewService(events.NewMemoryEventRepository(),
			events.WithLogger(provider))
		m.comments = comments.NewService(comments.NewMemoryCommentRepository(),
			comments.WithLogger(provider))
		m.contact = contact.NewService(contact.NewMemorySubmissionRepository(),
			contact.WithLogger(provider))
		m.membership = membership.NewService(membership.NewMemoryApplicationRepository(),
			membership.WithLogger(provider),
			membership.WithWebhookDispatcher(deps.Webhooks))
	}

	return m, nil
}

// Articles returns the article service.
func (m *Module) Articles() ArticleService {
	return m.articles
}

// Events returns the event service.
func (m *Module) Events() EventService {
	return m.events
}

// Comments returns the comment service.
func (m *Module) Comments() CommentService {
	return m.comments
}

// Contact returns the contact inbox service.
func (m *Module) Contact() ContactService {
	return m.contact
}

// Membership returns the membership application service.
func (m *Module) Membership() MembershipService {
	return m.membership
}

// Translator returns the translation client.
func (m *Module) Translator() TranslateClient {
	return m.translator
}

// NewEditorSession creates an auto-translation orchestrator for a new
// article, pre-configured with the module's translator and debounce windows.
func (m *Module) NewEditorSession(opts ...autotranslate.Option) *autotranslate.Orchestrator {
	return autotranslate.New(m.translator, m.sessionOptions(opts)...)
}

// OpenEditorSession creates an orchestrator over an existing article's form.
// Auto-translation starts disabled so stored translations survive opening
// the editor.
func (m *Module) OpenEditorSession(form autotranslate.Form, opts ...autotranslate.Option) *autotranslate.Orchestrator {
	return autotranslate.NewForArticle(m.translator, form, m.sessionOptions(opts)...)
}

func (m *Module) sessionOptions(extra []autotranslate.Option) []autotranslate.Option {
	opts := []autotranslate.Option{
		autotranslate.WithLogger(m.logger),
		autotranslate.WithDebounce(autotranslate.GroupTitle, m.cfg.Translation.TitleDebounce),
		autotranslate.WithDebounce(autotranslate.GroupExcerpt, m.cfg.Translation.ExcerptDebounce),
		autotranslate.WithDebounce(autotranslate.GroupBlocks, m.cfg.Translation.BlocksDebounce),
	}
	return append(opts, extra...)
}

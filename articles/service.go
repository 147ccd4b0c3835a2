package articles

import (
	"context"
	"strings"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/camarabr/chamber-cms/blocks"
	"github.com/camarabr/chamber-cms/internal/logging"
	"github.com/camarabr/chamber-cms/media"
	"github.com/camarabr/chamber-cms/pkg/interfaces"
)

// ValidationMessage is the inline banner shown when required fields are missing.
const ValidationMessage = "Preencha todos os campos obrigatórios (Título PT, Resumo PT, Autor)"

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// IDGenerator produces identifiers for new articles.
type IDGenerator func() uuid.UUID

// WithIDGenerator overrides the article id generator.
func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithSlugRandom overrides the random fragment used by fallback slugs.
func WithSlugRandom(random func() string) ServiceOption {
	return func(s *service) {
		if random != nil {
			s.slugRand = random
		}
	}
}

// WithLogger attaches a logger provider to the service.
func WithLogger(provider interfaces.LoggerProvider) ServiceOption {
	return func(s *service) {
		s.logger = logging.ArticlesLogger(provider)
	}
}

type service struct {
	repo     Repository
	uploader media.Uploader
	now      func() time.Time
	id       IDGenerator
	slugRand func() string
	logger   interfaces.Logger
}

// NewService creates the article service over a repository and the blob-store
// uploader used for cover and block images.
func NewService(repo Repository, uploader media.Uploader, opts ...ServiceOption) Service {
	s := &service{
		repo:     repo,
		uploader: uploader,
		now:      time.Now,
		id:       uuid.New,
		slugRand: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
		},
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Article, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Article, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *service) List(ctx context.Context) ([]*Article, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}

// Save validates the form, resolves every pending image upload, and writes
// the aggregate. Uploads happen before the write so a failed upload aborts
// the save with nothing persisted; the in-memory form stays intact for retry.
func (s *service) Save(ctx context.Context, req SaveRequest) (*Article, error) {
	if err := validateSave(req); err != nil {
		return nil, err
	}

	imageURL := req.ImageURL
	if req.CoverImage != nil {
		url, err := s.uploader.Upload(ctx, *req.CoverImage)
		if err != nil {
			s.logger.Error("cover upload failed", "error", err)
			return nil, err
		}
		imageURL = url
	}

	blocksPT, blocksRU, blocksEN, err := s.resolveBlockImages(ctx, req)
	if err != nil {
		s.logger.Error("block image upload failed", "error", err)
		return nil, err
	}

	now := s.now()

	if req.ID == nil {
		return s.create(ctx, req, imageURL, blocksPT, blocksRU, blocksEN, now)
	}
	return s.update(ctx, *req.ID, req, imageURL, blocksPT, blocksRU, blocksEN, now)
}

func (s *service) create(ctx context.Context, req SaveRequest, imageURL string, blocksPT, blocksRU, blocksEN []blocks.Block, now time.Time) (*Article, error) {
	slug := Slugify(req.TitlePT)
	if slug == "" {
		slug = FallbackSlug(now, s.slugRand())
	}

	record := &Article{
		ID:              s.id(),
		Slug:            slug,
		TitlePT:         req.TitlePT,
		TitleRU:         nilIfBlank(req.TitleRU),
		TitleEN:         nilIfBlank(req.TitleEN),
		ExcerptPT:       req.ExcerptPT,
		ExcerptRU:       nilIfBlank(req.ExcerptRU),
		ExcerptEN:       nilIfBlank(req.ExcerptEN),
		ContentBlocksPT: blocksPT,
		ContentBlocksRU: nilIfEmpty(blocksRU),
		ContentBlocksEN: nilIfEmpty(blocksEN),
		Category:        defaultIfBlank(req.Category, DefaultCategory),
		Author:          req.Author,
		ImageURL:        imageURL,
		ReadTime:        defaultIfBlank(req.ReadTime, DefaultReadTime),
		Status:          StatusDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.Publish {
		record.Status = StatusPublished
		record.IsPublished = true
		publishedAt := now
		record.PublishedAt = &publishedAt
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("article created", "article_id", created.ID.String(), "slug", created.Slug, "published", created.IsPublished)
	return created, nil
}

func (s *service) update(ctx context.Context, id uuid.UUID, req SaveRequest, imageURL string, blocksPT, blocksRU, blocksEN []blocks.Block, now time.Time) (*Article, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	record := &Article{
		ID:              existing.ID,
		Slug:            existing.Slug,
		TitlePT:         req.TitlePT,
		TitleRU:         nilIfBlank(req.TitleRU),
		TitleEN:         nilIfBlank(req.TitleEN),
		ExcerptPT:       req.ExcerptPT,
		ExcerptRU:       nilIfBlank(req.ExcerptRU),
		ExcerptEN:       nilIfBlank(req.ExcerptEN),
		ContentBlocksPT: blocksPT,
		ContentBlocksRU: nilIfEmpty(blocksRU),
		ContentBlocksEN: nilIfEmpty(blocksEN),
		Category:        defaultIfBlank(req.Category, DefaultCategory),
		Author:          req.Author,
		ImageURL:        imageURL,
		ReadTime:        defaultIfBlank(req.ReadTime, DefaultReadTime),
		Status:          existing.Status,
		IsPublished:     existing.IsPublished,
		PublishedAt:     existing.PublishedAt,
		CreatedAt:       existing.CreatedAt,
		UpdatedAt:       now,
	}

	// There is no unpublish flow: once published an article stays published,
	// and its original publish timestamp is never restamped.
	if req.Publish && !record.IsPublished {
		record.Status = StatusPublished
		record.IsPublished = true
		publishedAt := now
		record.PublishedAt = &publishedAt
	}

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("article updated", "article_id", updated.ID.String(), "published", updated.IsPublished)
	return updated, nil
}

// resolveBlockImages uploads every unsaved image-block file once and swaps
// the permanent URL into each language sequence referencing that block id.
// Uploads run concurrently; any failure aborts the whole save attempt.
func (s *service) resolveBlockImages(ctx context.Context, req SaveRequest) (pt, ru, en []blocks.Block, err error) {
	pt = blocks.Clone(req.BlocksPT)
	ru = blocks.Clone(req.BlocksRU)
	en = blocks.Clone(req.BlocksEN)

	pending := pendingImageIDs(req.BlockImages, pt, ru, en)
	if len(pending) == 0 {
		return pt, ru, en, nil
	}

	urls := make(map[string]string, len(pending))
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	for _, id := range pending {
		wg.Add(1)
		go func(id string, file media.File) {
			defer wg.Done()
			url, uploadErr := s.uploader.Upload(ctx, file)
			mu.Lock()
			defer mu.Unlock()
			if uploadErr != nil {
				if firstErr == nil {
					firstErr = uploadErr
				}
				return
			}
			urls[id] = url
		}(id, req.BlockImages[id])
	}
	wg.Wait()

	if firstErr != nil {
		return nil, nil, nil, firstErr
	}

	for _, seq := range [][]blocks.Block{pt, ru, en} {
		substituteImageURLs(seq, urls)
	}
	return pt, ru, en, nil
}

// pendingImageIDs returns the block ids that both hold a local preview in
// some sequence and have a file attached to the request.
func pendingImageIDs(files map[string]media.File, seqs ...[]blocks.Block) []string {
	seen := make(map[string]bool)
	var out []string
	for _, seq := range seqs {
		for _, b := range seq {
			meta, ok := b.Image()
			if !ok || !meta.IsLocalFile || seen[b.ID] {
				continue
			}
			if _, has := files[b.ID]; !has {
				continue
			}
			seen[b.ID] = true
			out = append(out, b.ID)
		}
	}
	return out
}

func substituteImageURLs(seq []blocks.Block, urls map[string]string) {
	for i := range seq {
		meta, ok := seq[i].Image()
		if !ok {
			continue
		}
		url, has := urls[seq[i].ID]
		if !has {
			continue
		}
		seq[i].Content = url
		meta.IsLocalFile = false
		seq[i].Meta = meta
	}
}

func validateSave(req SaveRequest) error {
	err := validation.Errors{
		"title_pt":   validation.Validate(req.TitlePT, validation.Required),
		"excerpt_pt": validation.Validate(req.ExcerptPT, validation.Required),
		"author":     validation.Validate(req.Author, validation.Required),
	}.Filter()
	if err != nil {
		return &ValidationError{Message: ValidationMessage, Err: err}
	}
	return nil
}

func nilIfBlank(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func nilIfEmpty(seq []blocks.Block) []blocks.Block {
	if len(seq) == 0 {
		return nil
	}
	return seq
}

func defaultIfBlank(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

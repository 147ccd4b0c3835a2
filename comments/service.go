package comments

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/camarabr/chamber-cms/internal/logging"
	"github.com/camarabr/chamber-cms/pkg/interfaces"
)

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

// WithIDGenerator overrides the comment id generator.
func WithIDGenerator(generator func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger attaches a logger provider to the service.
func WithLogger(provider interfaces.LoggerProvider) ServiceOption {
	return func(s *service) {
		s.logger = logging.CommentsLogger(provider)
	}
}

type service struct {
	repo   Repository
	now    func() time.Time
	id     func() uuid.UUID
	logger interfaces.Logger
}

// NewService creates the comment service.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (*Comment, error) {
	articleID := ""
	if req.ArticleID != uuid.Nil {
		articleID = req.ArticleID.String()
	}
	err := validation.Errors{
		"article_id":  validation.Validate(articleID, validation.Required),
		"author_name": validation.Validate(req.AuthorName, validation.Required),
		"email":       validation.Validate(req.Email, validation.Required, is.Email),
		"body":        validation.Validate(req.Body, validation.Required),
	}.Filter()
	if err != nil {
		return nil, &ValidationError{Err: err}
	}

	record := &Comment{
		ID:         s.id(),
		ArticleID:  req.ArticleID,
		AuthorName: req.AuthorName,
		Email:      req.Email,
		Body:       req.Body,
		Status:     StatusPending,
		CreatedAt:  s.now(),
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("comment submitted", "comment_id", created.ID.String(), "article_id", created.ArticleID.String())
	return created, nil
}

func (s *service) ListByArticle(ctx context.Context, articleID uuid.UUID, onlyApproved bool) ([]*Comment, error) {
	all, err := s.repo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !onlyApproved {
		return all, nil
	}

	out := make([]*Comment, 0, len(all))
	for _, c := range all {
		if c.Status == StatusApproved {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *service) ListPending(ctx context.Context) ([]*Comment, error) {
	return s.repo.ListByStatus(ctx, StatusPending)
}

func (s *service) Approve(ctx context.Context, id uuid.UUID) (*Comment, error) {
	return s.moderate(ctx, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, id uuid.UUID) (*Comment, error) {
	return s.moderate(ctx, id, StatusRejected)
}

func (s *service) moderate(ctx context.Context, id uuid.UUID, status string) (*Comment, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status == status {
		return existing, nil
	}

	existing.Status = status
	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.logger.Info("comment moderated", "comment_id", updated.ID.String(), "status", status)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}

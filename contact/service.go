package contact

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

// WithIDGenerator overrides the submission id generator.
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
		s.logger = logging.ContactLogger(provider)
	}
}

type service struct {
	repo   Repository
	now    func() time.Time
	id     func() uuid.UUID
	logger interfaces.Logger
}

// NewService creates the contact service.
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

func (s *service) Submit(ctx context.Context, req SubmitRequest) (*Submission, error) {
	err := validation.Errors{
		"name":    validation.Validate(req.Name, validation.Required),
		"email":   validation.Validate(req.Email, validation.Required, is.Email),
		"message": validation.Validate(req.Message, validation.Required),
	}.Filter()
	if err != nil {
		return nil, &ValidationError{Err: err}
	}

	record := &Submission{
		ID:        s.id(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: s.now(),
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("contact submission received", "submission_id", created.ID.String())
	return created, nil
}

func (s *service) List(ctx context.Context) ([]*Submission, error) {
	return s.repo.List(ctx)
}

func (s *service) ListUnread(ctx context.Context) ([]*Submission, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Submission, 0, len(all))
	for _, sub := range all {
		if !sub.IsRead {
			out = append(out, sub)
		}
	}
	return out, nil
}

// MarkRead flags the submission as handled; already-read submissions pass
// through unchanged.
func (s *service) MarkRead(ctx context.Context, id uuid.UUID) (*Submission, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.IsRead {
		return existing, nil
	}

	existing.IsRead = true
	return s.repo.Update(ctx, existing)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}

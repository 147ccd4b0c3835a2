package events

import (
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
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

// WithIDGenerator overrides the event id generator.
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
		s.logger = logging.EventsLogger(provider)
	}
}

type service struct {
	repo   Repository
	now    func() time.Time
	id     func() uuid.UUID
	logger interfaces.Logger
}

// NewService creates the event service.
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

func (s *service) Create(ctx context.Context, req CreateEventRequest) (*Event, error) {
	if err := validateEvent(req.TitlePT, req.Location, req.Date); err != nil {
		return nil, err
	}

	now := s.now()
	record := &Event{
		ID:            s.id(),
		TitlePT:       req.TitlePT,
		TitleRU:       nilIfBlank(req.TitleRU),
		TitleEN:       nilIfBlank(req.TitleEN),
		DescriptionPT: req.DescriptionPT,
		DescriptionRU: nilIfBlank(req.DescriptionRU),
		DescriptionEN: nilIfBlank(req.DescriptionEN),
		Date:          req.Date,
		Location:      req.Location,
		ImageURL:      req.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("event created", "event_id", created.ID.String(), "title", created.TitlePT)
	return created, nil
}

func (s *service) Update(ctx context.Context, req UpdateEventRequest) (*Event, error) {
	if req.ID == uuid.Nil {
		return nil, ErrIDRequired
	}
	if err := validateEvent(req.TitlePT, req.Location, req.Date); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	existing.TitlePT = req.TitlePT
	existing.TitleRU = nilIfBlank(req.TitleRU)
	existing.TitleEN = nilIfBlank(req.TitleEN)
	existing.DescriptionPT = req.DescriptionPT
	existing.DescriptionRU = nilIfBlank(req.DescriptionRU)
	existing.DescriptionEN = nilIfBlank(req.DescriptionEN)
	existing.Date = req.Date
	existing.Location = req.Location
	existing.ImageURL = req.ImageURL
	existing.UpdatedAt = s.now()

	return s.repo.Update(ctx, existing)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Event, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Event, error) {
	return s.repo.List(ctx)
}

// Publish flips the visibility flag; publishing an already published event is
// a no-op.
func (s *service) Publish(ctx context.Context, id uuid.UUID) (*Event, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.IsPublished {
		return existing, nil
	}

	existing.IsPublished = true
	existing.UpdatedAt = s.now()

	published, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.logger.Info("event published", "event_id", published.ID.String())
	return published, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}

func validateEvent(title, location string, date time.Time) error {
	err := validation.Errors{
		"title_pt": validation.Validate(title, validation.Required),
		"location": validation.Validate(location, validation.Required),
		"date":     validation.Validate(date, validation.Required),
	}.Filter()
	if err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

func nilIfBlank(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

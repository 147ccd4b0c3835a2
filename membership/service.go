package membership

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/camarabr/chamber-cms/internal/logging"
	"github.com/camarabr/chamber-cms/pkg/interfaces"
)

// WebhookEventApproved is the event type dispatched when an application is
// accepted.
const WebhookEventApproved = "membership.application.approved"

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

// WithIDGenerator overrides the application id generator.
func WithIDGenerator(generator func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithWebhookDispatcher wires the external integration notified on approval.
func WithWebhookDispatcher(dispatcher interfaces.WebhookDispatcher) ServiceOption {
	return func(s *service) {
		if dispatcher != nil {
			s.webhooks = dispatcher
		}
	}
}

// WithLogger attaches a logger provider to the service.
func WithLogger(provider interfaces.LoggerProvider) ServiceOption {
	return func(s *service) {
		s.logger = logging.MembershipLogger(provider)
	}
}

type service struct {
	repo     Repository
	webhooks interfaces.WebhookDispatcher
	now      func() time.Time
	id       func() uuid.UUID
	logger   interfaces.Logger
}

// NewService creates the membership service. Without an explicit dispatcher,
// approval events are dropped.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:     repo,
		webhooks: interfaces.NoOpWebhookDispatcher(),
		now:      time.Now,
		id:       uuid.New,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (*Application, error) {
	err := validation.Errors{
		"company":      validation.Validate(req.Company, validation.Required),
		"contact_name": validation.Validate(req.ContactName, validation.Required),
		"email":        validation.Validate(req.Email, validation.Required, is.Email),
	}.Filter()
	if err != nil {
		return nil, &ValidationError{Err: err}
	}

	record := &Application{
		ID:          s.id(),
		Company:     req.Company,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Segment:     req.Segment,
		Message:     req.Message,
		Status:      StatusPending,
		CreatedAt:   s.now(),
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("application submitted", "application_id", created.ID.String(), "company", created.Company)
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Application, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Application, error) {
	return s.repo.List(ctx)
}

func (s *service) ListPending(ctx context.Context) ([]*Application, error) {
	return s.repo.ListByStatus(ctx, StatusPending)
}

// Approve accepts a pending application and dispatches the approval event.
// The decision persists even when the dispatch fails; the error is surfaced
// so the admin can retry the integration side.
func (s *service) Approve(ctx context.Context, id uuid.UUID) (*Application, error) {
	approved, err := s.decide(ctx, id, StatusApproved)
	if err != nil {
		return nil, err
	}

	event := interfaces.WebhookEvent{
		Type:       WebhookEventApproved,
		ResourceID: approved.ID.String(),
		Payload: map[string]any{
			"company":      approved.Company,
			"contact_name": approved.ContactName,
			"email":        approved.Email,
			"segment":      approved.Segment,
		},
	}
	if err := s.webhooks.Dispatch(ctx, event); err != nil {
		s.logger.Error("approval webhook failed", "application_id", approved.ID.String(), "error", err)
		return approved, err
	}
	return approved, nil
}

// Reject declines a pending application. No webhook fires for rejections.
func (s *service) Reject(ctx context.Context, id uuid.UUID) (*Application, error) {
	return s.decide(ctx, id, StatusRejected)
}

func (s *service) decide(ctx context.Context, id uuid.UUID, status string) (*Application, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status != StatusPending {
		return nil, ErrAlreadyDecided
	}

	decidedAt := s.now()
	existing.Status = status
	existing.DecidedAt = &decidedAt

	decided, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.logger.Info("application decided", "application_id", decided.ID.String(), "status", status)
	return decided, nil
}

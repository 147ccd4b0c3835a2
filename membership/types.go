// Package membership processes applications to join the chamber: the public
// application form plus the admin review queue. Approving an application
// notifies external integrations through the webhook dispatcher.
package membership

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Review status values.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Application is one membership application.
type Application struct {
	bun.BaseModel `bun:"table:membership_applications,alias:ma"`

	ID          uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Company     string     `bun:"company,notnull" json:"company"`
	ContactName string     `bun:"contact_name,notnull" json:"contact_name"`
	Email       string     `bun:"email,notnull" json:"email"`
	Phone       string     `bun:"phone" json:"phone"`
	Segment     string     `bun:"segment" json:"segment"`
	Message     string     `bun:"message" json:"message"`
	Status      string     `bun:"status,notnull,default:'pending'" json:"status"`
	DecidedAt   *time.Time `bun:"decided_at,nullzero" json:"decided_at,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// Service exposes submission and review.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*Application, error)
	Get(ctx context.Context, id uuid.UUID) (*Application, error)
	List(ctx context.Context) ([]*Application, error)
	ListPending(ctx context.Context) ([]*Application, error)
	Approve(ctx context.Context, id uuid.UUID) (*Application, error)
	Reject(ctx context.Context, id uuid.UUID) (*Application, error)
}

// SubmitRequest carries the public application form.
type SubmitRequest struct {
	Company     string
	ContactName string
	Email       string
	Phone       string
	Segment     string
	Message     string
}

// Repository is the persistence port for applications.
type Repository interface {
	Create(ctx context.Context, record *Application) (*Application, error)
	Update(ctx context.Context, record *Application) (*Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Application, error)
	List(ctx context.Context) ([]*Application, error)
	ListByStatus(ctx context.Context, status string) ([]*Application, error)
}

// Package contact stores submissions from the public contact form and the
// admin inbox that triages them.
package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Submission is one contact-form message.
type Submission struct {
	bun.BaseModel `bun:"table:contact_submissions,alias:cs"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Email     string    `bun:"email,notnull" json:"email"`
	Subject   string    `bun:"subject" json:"subject"`
	Message   string    `bun:"message,notnull" json:"message"`
	IsRead    bool      `bun:"is_read,notnull,default:false" json:"is_read"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// Service exposes the public form endpoint and the admin inbox.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*Submission, error)
	List(ctx context.Context) ([]*Submission, error)
	ListUnread(ctx context.Context) ([]*Submission, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*Submission, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubmitRequest carries the public contact form.
type SubmitRequest struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Repository is the persistence port for contact submissions.
type Repository interface {
	Create(ctx context.Context, record *Submission) (*Submission, error)
	Update(ctx context.Context, record *Submission) (*Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Submission, error)
	List(ctx context.Context) ([]*Submission, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

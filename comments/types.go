// Package comments handles reader comments on articles and their moderation
// queue. Comments arrive pending and only show publicly once approved.
package comments

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Moderation status values.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Comment is one reader comment attached to an article.
type Comment struct {
	bun.BaseModel `bun:"table:comments,alias:c"`

	ID         uuid.UUID `bun:",pk,type:uuid" json:"id"`
	ArticleID  uuid.UUID `bun:"article_id,notnull,type:uuid" json:"article_id"`
	AuthorName string    `bun:"author_name,notnull" json:"author_name"`
	Email      string    `bun:"email,notnull" json:"email"`
	Body       string    `bun:"body,notnull" json:"body"`
	Status     string    `bun:"status,notnull,default:'pending'" json:"status"`
	CreatedAt  time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// Service exposes submission and moderation.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*Comment, error)
	ListByArticle(ctx context.Context, articleID uuid.UUID, onlyApproved bool) ([]*Comment, error)
	ListPending(ctx context.Context) ([]*Comment, error)
	Approve(ctx context.Context, id uuid.UUID) (*Comment, error)
	Reject(ctx context.Context, id uuid.UUID) (*Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubmitRequest carries a new reader comment.
type SubmitRequest struct {
	ArticleID  uuid.UUID
	AuthorName string
	Email      string
	Body       string
}

// Repository is the persistence port for comments.
type Repository interface {
	Create(ctx context.Context, record *Comment) (*Comment, error)
	Update(ctx context.Context, record *Comment) (*Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Comment, error)
	ListByArticle(ctx context.Context, articleID uuid.UUID) ([]*Comment, error)
	ListByStatus(ctx context.Context, status string) ([]*Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

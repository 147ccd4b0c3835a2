package articles

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository is the persistence port for articles.
type Repository interface {
	Create(ctx context.Context, record *Article) (*Article, error)
	Update(ctx context.Context, record *Article) (*Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	List(ctx context.Context) ([]*Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewArticleRepository builds the generic bun repository for articles.
func NewArticleRepository(db *bun.DB) repository.Repository[*Article] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Article]{
		NewRecord: func() *Article { return &Article{} },
		GetID: func(a *Article) uuid.UUID {
			return a.ID
		},
		SetID: func(a *Article, id uuid.UUID) {
			a.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(a *Article) string {
			return a.Slug
		},
	})
}

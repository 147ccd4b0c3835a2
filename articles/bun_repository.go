package articles

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunArticleRepository persists articles through go-repository-bun.
type BunArticleRepository struct {
	repo repository.Repository[*Article]
}

func NewBunArticleRepository(db *bun.DB) *BunArticleRepository {
	return &BunArticleRepository{repo: NewArticleRepository(db)}
}

func (r *BunArticleRepository) Create(ctx context.Context, record *Article) (*Article, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "article", record.Slug)
	}
	return created, nil
}

func (r *BunArticleRepository) Update(ctx context.Context, record *Article) (*Article, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "article", record.ID.String())
	}
	return updated, nil
}

func (r *BunArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*Article, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "article", id.String())
	}
	return result, nil
}

func (r *BunArticleRepository) GetBySlug(ctx context.Context, slug string) (*Article, error) {
	result, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "article", slug)
	}
	return result, nil
}

func (r *BunArticleRepository) List(ctx context.Context) ([]*Article, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.created_at DESC")
	}))
	if err != nil {
		return nil, mapRepositoryError(err, "article", "")
	}
	return records, nil
}

func (r *BunArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.repo.Delete(ctx, &Article{ID: id}); err != nil {
		return mapRepositoryError(err, "article", id.String())
	}
	return nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

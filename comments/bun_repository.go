package comments

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewCommentRepository builds the generic bun repository for comments.
func NewCommentRepository(db *bun.DB) repository.Repository[*Comment] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Comment]{
		NewRecord: func() *Comment { return &Comment{} },
		GetID: func(c *Comment) uuid.UUID {
			return c.ID
		},
		SetID: func(c *Comment, id uuid.UUID) {
			c.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(c *Comment) string {
			if c == nil {
				return ""
			}
			return c.ID.String()
		},
	})
}

// BunCommentRepository persists comments through go-repository-bun.
type BunCommentRepository struct {
	repo repository.Repository[*Comment]
}

func NewBunCommentRepository(db *bun.DB) *BunCommentRepository {
	return &BunCommentRepository{repo: NewCommentRepository(db)}
}

func (r *BunCommentRepository) Create(ctx context.Context, record *Comment) (*Comment, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "comment", record.ID.String())
	}
	return created, nil
}

func (r *BunCommentRepository) Update(ctx context.Context, record *Comment) (*Comment, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "comment", record.ID.String())
	}
	return updated, nil
}

func (r *BunCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*Comment, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "comment", id.String())
	}
	return result, nil
}

func (r *BunCommentRepository) ListByArticle(ctx context.Context, articleID uuid.UUID) ([]*Comment, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.article_id = ?", articleID).
			OrderExpr("?TableAlias.created_at ASC")
	}))
	if err != nil {
		return nil, mapRepositoryError(err, "comment", articleID.String())
	}
	return records, nil
}

func (r *BunCommentRepository) ListByStatus(ctx context.Context, status string) ([]*Comment, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.status = ?", status).
			OrderExpr("?TableAlias.created_at ASC")
	}))
	if err != nil {
		return nil, mapRepositoryError(err, "comment", status)
	}
	return records, nil
}

func (r *BunCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.repo.Delete(ctx, &Comment{ID: id}); err != nil {
		return mapRepositoryError(err, "comment", id.String())
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

package membership

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewApplicationRepository builds the generic bun repository for applications.
func NewApplicationRepository(db *bun.DB) repository.Repository[*Application] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Application]{
		NewRecord: func() *Application { return &Application{} },
		GetID: func(a *Application) uuid.UUID {
			return a.ID
		},
		SetID: func(a *Application, id uuid.UUID) {
			a.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(a *Application) string {
			if a == nil {
				return ""
			}
			return a.ID.String()
		},
	})
}

// BunApplicationRepository persists applications through go-repository-bun.
type BunApplicationRepository struct {
	repo repository.Repository[*Application]
}

func NewBunApplicationRepository(db *bun.DB) *BunApplicationRepository {
	return &BunApplicationRepository{repo: NewApplicationRepository(db)}
}

func (r *BunApplicationRepository) Create(ctx context.Context, record *Application) (*Application, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "application", record.ID.String())
	}
	return created, nil
}

func (r *BunApplicationRepository) Update(ctx context.Context, record *Application) (*Application, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "application", record.ID.String())
	}
	return updated, nil
}

func (r *BunApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*Application, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "application", id.String())
	}
	return result, nil
}

func (r *BunApplicationRepository) List(ctx context.Context) ([]*Application, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.created_at ASC")
	}))
	if err != nil {
		return nil, mapRepositoryError(err, "application", "")
	}
	return records, nil
}

func (r *BunApplicationRepository) ListByStatus(ctx context.Context, status string) ([]*Application, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("?TableAlias.status = ?", status).
			OrderExpr("?TableAlias.created_at ASC")
	}))
	if err != nil {
		return nil, mapRepositoryError(err, "application", status)
	}
	return records, nil
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

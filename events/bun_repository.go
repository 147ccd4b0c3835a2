package events

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewEventRepository builds the generic bun repository for events.
func NewEventRepository(db *bun.DB) repository.Repository[*Event] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Event]{
		NewRecord: func() *Event { return &Event{} },
		GetID: func(e *Event) uuid.UUID {
			return e.ID
		},
		SetID: func(e *Event, id uuid.UUID) {
			e.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(e *Event) string {
			if e == nil {
				return ""
			}
			return e.ID.String()
		},
	})
}

// BunEventRepository persists events through go-repository-bun.
type BunEventRepository struct {
	repo repository.Repository[*Event]
}

func NewBunEventRepository(db *bun.DB) *BunEventRepository {
	return &BunEventRepository{repo: NewEventRepository(db)}
}

func (r *BunEventRepository) Create(ctx context.Context, record *Event) (*Event, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "event", record.ID.String())
	}
	return created, nil
}

func (r *BunEventRepository) Update(ctx context.Context, record *Event) (*Event, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "event", record.ID.String())
	}
	return updated, nil
}

func (r *BunEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "event", id.String())
	}
	return result, nil
}

func (r *BunEventRepository) List(ctx context.Context) ([]*Event, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.date ASC")
	}))
	if err != nil {
		return nil, mapRepositoryError(err, "event", "")
	}
	return records, nil
}

func (r *BunEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.repo.Delete(ctx, &Event{ID: id}); err != nil {
		return mapRepositoryError(err, "event", id.String())
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

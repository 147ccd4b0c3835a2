package contact

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewSubmissionRepository builds the generic bun repository for submissions.
func NewSubmissionRepository(db *bun.DB) repository.Repository[*Submission] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Submission]{
		NewRecord: func() *Submission { return &Submission{} },
		GetID: func(s *Submission) uuid.UUID {
			return s.ID
		},
		SetID: func(s *Submission, id uuid.UUID) {
			s.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(s *Submission) string {
			if s == nil {
				return ""
			}
			return s.ID.String()
		},
	})
}

// BunSubmissionRepository persists submissions through go-repository-bun.
type BunSubmissionRepository struct {
	repo repository.Repository[*Submission]
}

func NewBunSubmissionRepository(db *bun.DB) *BunSubmissionRepository {
	return &BunSubmissionRepository{repo: NewSubmissionRepository(db)}
}

func (r *BunSubmissionRepository) Create(ctx context.Context, record *Submission) (*Submission, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "submission", record.ID.String())
	}
	return created, nil
}

func (r *BunSubmissionRepository) Update(ctx context.Context, record *Submission) (*Submission, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, "submission", record.ID.String())
	}
	return updated, nil
}

func (r *BunSubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*Submission, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "submission", id.String())
	}
	return result, nil
}

func (r *BunSubmissionRepository) List(ctx context.Context) ([]*Submission, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.created_at DESC")
	}))
	if err != nil {
		return nil, mapRepositoryError(err, "submission", "")
	}
	return records, nil
}

func (r *BunSubmissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.repo.Delete(ctx, &Submission{ID: id}); err != nil {
		return mapRepositoryError(err, "submission", id.String())
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

package comments

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryCommentRepository is an in-memory implementation for scaffolding and tests.
type MemoryCommentRepository struct {
	mu       sync.RWMutex
	comments map[uuid.UUID]*Comment
}

// NewMemoryCommentRepository creates an empty in-memory comment repository.
func NewMemoryCommentRepository() *MemoryCommentRepository {
	return &MemoryCommentRepository{comments: make(map[uuid.UUID]*Comment)}
}

func (m *MemoryCommentRepository) Create(_ context.Context, record *Comment) (*Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *record
	m.comments[copied.ID] = &copied
	out := copied
	return &out, nil
}

func (m *MemoryCommentRepository) Update(_ context.Context, record *Comment) (*Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.comments[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "comment", Key: record.ID.String()}
	}
	copied := *record
	m.comments[copied.ID] = &copied
	out := copied
	return &out, nil
}

func (m *MemoryCommentRepository) GetByID(_ context.Context, id uuid.UUID) (*Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.comments[id]
	if !ok {
		return nil, &NotFoundError{Resource: "comment", Key: id.String()}
	}
	out := *rec
	return &out, nil
}

// ListByArticle returns the article's comments, oldest first.
func (m *MemoryCommentRepository) ListByArticle(_ context.Context, articleID uuid.UUID) ([]*Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Comment
	for _, rec := range m.comments {
		if rec.ArticleID != articleID {
			continue
		}
		local := *rec
		out = append(out, &local)
	}
	sortByCreated(out)
	return out, nil
}

func (m *MemoryCommentRepository) ListByStatus(_ context.Context, status string) ([]*Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Comment
	for _, rec := range m.comments {
		if rec.Status != status {
			continue
		}
		local := *rec
		out = append(out, &local)
	}
	sortByCreated(out)
	return out, nil
}

func (m *MemoryCommentRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.comments[id]; !ok {
		return &NotFoundError{Resource: "comment", Key: id.String()}
	}
	delete(m.comments, id)
	return nil
}

func sortByCreated(out []*Comment) {
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
}

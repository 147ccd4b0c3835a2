package contact

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemorySubmissionRepository is an in-memory implementation for scaffolding and tests.
type MemorySubmissionRepository struct {
	mu          sync.RWMutex
	submissions map[uuid.UUID]*Submission
}

// NewMemorySubmissionRepository creates an empty in-memory submission repository.
func NewMemorySubmissionRepository() *MemorySubmissionRepository {
	return &MemorySubmissionRepository{submissions: make(map[uuid.UUID]*Submission)}
}

func (m *MemorySubmissionRepository) Create(_ context.Context, record *Submission) (*Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *record
	m.submissions[copied.ID] = &copied
	out := copied
	return &out, nil
}

func (m *MemorySubmissionRepository) Update(_ context.Context, record *Submission) (*Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.submissions[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "submission", Key: record.ID.String()}
	}
	copied := *record
	m.submissions[copied.ID] = &copied
	out := copied
	return &out, nil
}

func (m *MemorySubmissionRepository) GetByID(_ context.Context, id uuid.UUID) (*Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.submissions[id]
	if !ok {
		return nil, &NotFoundError{Resource: "submission", Key: id.String()}
	}
	out := *rec
	return &out, nil
}

// List returns all submissions, newest first.
func (m *MemorySubmissionRepository) List(_ context.Context) ([]*Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Submission, 0, len(m.submissions))
	for _, rec := range m.submissions {
		local := *rec
		out = append(out, &local)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemorySubmissionRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.submissions[id]; !ok {
		return &NotFoundError{Resource: "submission", Key: id.String()}
	}
	delete(m.submissions, id)
	return nil
}

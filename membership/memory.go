package membership

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryApplicationRepository is an in-memory implementation for scaffolding and tests.
type MemoryApplicationRepository struct {
	mu           sync.RWMutex
	applications map[uuid.UUID]*Application
}

// NewMemoryApplicationRepository creates an empty in-memory application repository.
func NewMemoryApplicationRepository() *MemoryApplicationRepository {
	return &MemoryApplicationRepository{applications: make(map[uuid.UUID]*Application)}
}

func (m *MemoryApplicationRepository) Create(_ context.Context, record *Application) (*Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneApplication(record)
	m.applications[copied.ID] = copied
	return cloneApplication(copied), nil
}

func (m *MemoryApplicationRepository) Update(_ context.Context, record *Application) (*Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.applications[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "application", Key: record.ID.String()}
	}
	copied := cloneApplication(record)
	m.applications[copied.ID] = copied
	return cloneApplication(copied), nil
}

func (m *MemoryApplicationRepository) GetByID(_ context.Context, id uuid.UUID) (*Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.applications[id]
	if !ok {
		return nil, &NotFoundError{Resource: "application", Key: id.String()}
	}
	return cloneApplication(rec), nil
}

// List returns all applications, oldest first so the review queue is FIFO.
func (m *MemoryApplicationRepository) List(_ context.Context) ([]*Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Application, 0, len(m.applications))
	for _, rec := range m.applications {
		out = append(out, cloneApplication(rec))
	}
	sortByCreated(out)
	return out, nil
}

func (m *MemoryApplicationRepository) ListByStatus(_ context.Context, status string) ([]*Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Application
	for _, rec := range m.applications {
		if rec.Status != status {
			continue
		}
		out = append(out, cloneApplication(rec))
	}
	sortByCreated(out)
	return out, nil
}

func sortByCreated(out []*Application) {
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
}

func cloneApplication(src *Application) *Application {
	if src == nil {
		return nil
	}
	copied := *src
	if src.DecidedAt != nil {
		local := *src.DecidedAt
		copied.DecidedAt = &local
	}
	return &copied
}

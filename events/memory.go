package events

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryEventRepository is an in-memory implementation for scaffolding and tests.
type MemoryEventRepository struct {
	mu     sync.RWMutex
	events map[uuid.UUID]*Event
}

// NewMemoryEventRepository creates an empty in-memory event repository.
func NewMemoryEventRepository() *MemoryEventRepository {
	return &MemoryEventRepository{events: make(map[uuid.UUID]*Event)}
}

func (m *MemoryEventRepository) Create(_ context.Context, record *Event) (*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneEvent(record)
	m.events[copied.ID] = copied
	return cloneEvent(copied), nil
}

func (m *MemoryEventRepository) Update(_ context.Context, record *Event) (*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.events[record.ID]; !ok {
		return nil, &NotFoundError{Resource: "event", Key: record.ID.String()}
	}
	copied := cloneEvent(record)
	m.events[copied.ID] = copied
	return cloneEvent(copied), nil
}

func (m *MemoryEventRepository) GetByID(_ context.Context, id uuid.UUID) (*Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.events[id]
	if !ok {
		return nil, &NotFoundError{Resource: "event", Key: id.String()}
	}
	return cloneEvent(rec), nil
}

// List returns all events ordered by date, soonest first.
func (m *MemoryEventRepository) List(_ context.Context) ([]*Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Event, 0, len(m.events))
	for _, rec := range m.events {
		out = append(out, cloneEvent(rec))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func (m *MemoryEventRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.events[id]; !ok {
		return &NotFoundError{Resource: "event", Key: id.String()}
	}
	delete(m.events, id)
	return nil
}

func cloneEvent(src *Event) *Event {
	if src == nil {
		return nil
	}
	copied := *src
	copied.TitleRU = clonePtr(src.TitleRU)
	copied.TitleEN = clonePtr(src.TitleEN)
	copied.DescriptionRU = clonePtr(src.DescriptionRU)
	copied.DescriptionEN = clonePtr(src.DescriptionEN)
	return &copied
}

func clonePtr(src *string) *string {
	if src == nil {
		return nil
	}
	local := *src
	return &local
}

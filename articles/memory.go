package articles

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/camarabr/chamber-cms/blocks"
)

// MemoryArticleRepository is an in-memory implementation for scaffolding and tests.
type MemoryArticleRepository struct {
	mu        sync.RWMutex
	articles  map[uuid.UUID]*Article
	slugIndex map[string]uuid.UUID
}

// NewMemoryArticleRepository creates an empty in-memory article repository.
func NewMemoryArticleRepository() *MemoryArticleRepository {
	return &MemoryArticleRepository{
		articles:  make(map[uuid.UUID]*Article),
		slugIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied article.
func (m *MemoryArticleRepository) Create(_ context.Context, record *Article) (*Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneArticle(record)
	m.articles[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneArticle(copied), nil
}

// Update replaces the stored article, re-indexing the slug if it moved.
func (m *MemoryArticleRepository) Update(_ context.Context, record *Article) (*Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.articles[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "article", Key: record.ID.String()}
	}
	if existing.Slug != record.Slug {
		delete(m.slugIndex, existing.Slug)
	}

	copied := cloneArticle(record)
	m.articles[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneArticle(copied), nil
}

// GetByID retrieves an article by identifier.
func (m *MemoryArticleRepository) GetByID(_ context.Context, id uuid.UUID) (*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.articles[id]
	if !ok {
		return nil, &NotFoundError{Resource: "article", Key: id.String()}
	}
	return cloneArticle(rec), nil
}

// GetBySlug retrieves an article by slug, returning NotFoundError when absent.
func (m *MemoryArticleRepository) GetBySlug(_ context.Context, slug string) (*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "article", Key: slug}
	}
	return cloneArticle(m.articles[id]), nil
}

// List returns all articles, newest first.
func (m *MemoryArticleRepository) List(_ context.Context) ([]*Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Article, 0, len(m.articles))
	for _, rec := range m.articles {
		out = append(out, cloneArticle(rec))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes an article by id.
func (m *MemoryArticleRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.articles[id]
	if !ok {
		return &NotFoundError{Resource: "article", Key: id.String()}
	}
	delete(m.slugIndex, rec.Slug)
	delete(m.articles, id)
	return nil
}

func cloneArticle(src *Article) *Article {
	if src == nil {
		return nil
	}

	copied := *src
	copied.TitleRU = cloneStringPtr(src.TitleRU)
	copied.TitleEN = cloneStringPtr(src.TitleEN)
	copied.ExcerptRU = cloneStringPtr(src.ExcerptRU)
	copied.ExcerptEN = cloneStringPtr(src.ExcerptEN)
	copied.ContentBlocksPT = blocks.Clone(src.ContentBlocksPT)
	copied.ContentBlocksRU = blocks.Clone(src.ContentBlocksRU)
	copied.ContentBlocksEN = blocks.Clone(src.ContentBlocksEN)
	if src.PublishedAt != nil {
		local := *src.PublishedAt
		copied.PublishedAt = &local
	}
	return &copied
}

func cloneStringPtr(src *string) *string {
	if src == nil {
		return nil
	}
	local := *src
	return &local
}

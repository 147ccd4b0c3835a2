// Package articles persists the chamber's multilingual news articles: the
// three-language aggregate assembled in the editor, its slug, and its
// draft/published lifecycle.
package articles

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/camarabr/chamber-cms/blocks"
	"github.com/camarabr/chamber-cms/media"
)

// Categories offered in the editor's fixed menu.
var Categories = []string{"Comércio", "Indústria", "Cultura", "Turismo", "Tecnologia", "Inovação"}

const (
	// DefaultCategory backs the category selector's initial value.
	DefaultCategory = "Comércio"
	// DefaultReadTime is the free-text estimate applied when none is given.
	DefaultReadTime = "5 min"
)

// Publication status values.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Article is the persisted multilingual aggregate. Portuguese fields are the
// source of truth; Russian and English are nullable so "no translation yet"
// stays distinguishable from a translation to an empty string.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:a"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Slug      string    `bun:"slug,notnull" json:"slug"`
	TitlePT   string    `bun:"title_pt,notnull" json:"title_pt"`
	TitleRU   *string   `bun:"title_ru" json:"title_ru,omitempty"`
	TitleEN   *string   `bun:"title_en" json:"title_en,omitempty"`
	ExcerptPT string    `bun:"excerpt_pt,notnull" json:"excerpt_pt"`
	ExcerptRU *string   `bun:"excerpt_ru" json:"excerpt_ru,omitempty"`
	ExcerptEN *string   `bun:"excerpt_en" json:"excerpt_en,omitempty"`

	ContentBlocksPT []blocks.Block `bun:"content_blocks_pt,type:jsonb" json:"content_blocks_pt"`
	ContentBlocksRU []blocks.Block `bun:"content_blocks_ru,type:jsonb,nullzero" json:"content_blocks_ru,omitempty"`
	ContentBlocksEN []blocks.Block `bun:"content_blocks_en,type:jsonb,nullzero" json:"content_blocks_en,omitempty"`

	Category    string     `bun:"category,notnull" json:"category"`
	Author      string     `bun:"author,notnull" json:"author"`
	ImageURL    string     `bun:"image_url" json:"image_url"`
	ReadTime    string     `bun:"read_time" json:"read_time"`
	Status      string     `bun:"status,notnull,default:'draft'" json:"status"`
	IsPublished bool       `bun:"is_published,notnull,default:false" json:"is_published"`
	PublishedAt *time.Time `bun:"published_at,nullzero" json:"published_at,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Service exposes the article save/read use-cases behind the admin editor.
type Service interface {
	Save(ctx context.Context, req SaveRequest) (*Article, error)
	Get(ctx context.Context, id uuid.UUID) (*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	List(ctx context.Context) ([]*Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SaveRequest carries the assembled three-language form plus any image files
// still waiting for their durable upload. A nil ID creates a new article;
// otherwise the matching article is updated in place (slug excluded — it is
// immutable after creation).
type SaveRequest struct {
	ID *uuid.UUID

	TitlePT   string
	TitleRU   string
	TitleEN   string
	ExcerptPT string
	ExcerptRU string
	ExcerptEN string

	BlocksPT []blocks.Block
	BlocksRU []blocks.Block
	BlocksEN []blocks.Block

	Category string
	Author   string
	ImageURL string
	ReadTime string

	// CoverImage replaces ImageURL once uploaded.
	CoverImage *media.File
	// BlockImages holds unsaved image-block files keyed by block id. Block
	// ids are shared across the language sequences, so each file uploads
	// once and its URL lands in every sequence referencing the block.
	BlockImages map[string]media.File

	Publish bool
}

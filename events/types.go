// Package events manages the chamber's event listings: multilingual title and
// description, schedule, and a publish flag that controls public visibility.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Event is a chamber event. Portuguese text is required; Russian and English
// are nullable, same convention as articles.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	ID            uuid.UUID `bun:",pk,type:uuid" json:"id"`
	TitlePT       string    `bun:"title_pt,notnull" json:"title_pt"`
	TitleRU       *string   `bun:"title_ru" json:"title_ru,omitempty"`
	TitleEN       *string   `bun:"title_en" json:"title_en,omitempty"`
	DescriptionPT string    `bun:"description_pt" json:"description_pt"`
	DescriptionRU *string   `bun:"description_ru" json:"description_ru,omitempty"`
	DescriptionEN *string   `bun:"description_en" json:"description_en,omitempty"`

	Date        time.Time `bun:"date,notnull" json:"date"`
	Location    string    `bun:"location,notnull" json:"location"`
	ImageURL    string    `bun:"image_url" json:"image_url"`
	IsPublished bool      `bun:"is_published,notnull,default:false" json:"is_published"`

	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Service exposes event management for the admin surface.
type Service interface {
	Create(ctx context.Context, req CreateEventRequest) (*Event, error)
	Update(ctx context.Context, req UpdateEventRequest) (*Event, error)
	Get(ctx context.Context, id uuid.UUID) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Publish(ctx context.Context, id uuid.UUID) (*Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateEventRequest carries the admin form for a new event.
type CreateEventRequest struct {
	TitlePT       string
	TitleRU       string
	TitleEN       string
	DescriptionPT string
	DescriptionRU string
	DescriptionEN string
	Date          time.Time
	Location      string
	ImageURL      string
}

// UpdateEventRequest replaces an existing event's editable fields.
type UpdateEventRequest struct {
	ID uuid.UUID

	TitlePT       string
	TitleRU       string
	TitleEN       string
	DescriptionPT string
	DescriptionRU string
	DescriptionEN string
	Date          time.Time
	Location      string
	ImageURL      string
}

// Repository is the persistence port for events.
type Repository interface {
	Create(ctx context.Context, record *Event) (*Event, error)
	Update(ctx context.Context, record *Event) (*Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

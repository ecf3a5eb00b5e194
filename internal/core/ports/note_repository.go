package ports

import (
	"context"

	"github.com/inkwell-labs/notes-api/internal/core/domain"
)

// NoteSort describes a single sort key for note listings.
type NoteSort struct {
	Field string // stored field name: created_at, updated_at, title
	Desc  bool
}

// NoteFilter carries the query parameters for listing notes.
// OwnerID is always set by the service layer; listing is scoped to the owner
// at the query, never filtered after the fact.
type NoteFilter struct {
	OwnerID string
	Search  string // optional: case-insensitive substring over title or content
	Sort    NoteSort
}

// NoteRepository defines persistence operations for notes.
type NoteRepository interface {
	Insert(ctx context.Context, note *domain.Note) (*domain.Note, error)
	// FindByID retrieves a note by id. A malformed id is reported the same
	// way as an absent one: domain.ErrNoteNotFound.
	FindByID(ctx context.Context, id string) (*domain.Note, error)
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter NoteFilter) ([]*domain.Note, error)
}

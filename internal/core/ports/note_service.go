package ports

import (
	"context"

	"github.com/inkwell-labs/notes-api/internal/core/domain"
)

// CreateNoteInput carries the data needed to create a note. OwnerID comes
// from the authenticated principal, never from the request body.
type CreateNoteInput struct {
	OwnerID string
	Title   string
	Content string
}

// UpdateNoteInput carries a partial update. Empty Title or Content keeps the
// existing value.
type UpdateNoteInput struct {
	OwnerID string
	NoteID  string
	Title   string
	Content string
}

// ListNotesInput carries the query parameters for the list endpoint.
// SortBy uses the wire format "<field>[:asc|:desc]"; unknown fields fall back
// to the default ordering (newest created first).
type ListNotesInput struct {
	OwnerID string
	Search  string
	SortBy  string
}

// NoteService defines use-case operations for notes. Every id-scoped call
// enforces ownership: a note belonging to someone else yields
// domain.ErrForbidden, an absent or malformed id domain.ErrNoteNotFound.
type NoteService interface {
	Create(ctx context.Context, input CreateNoteInput) (*domain.Note, error)
	Get(ctx context.Context, ownerID, noteID string) (*domain.Note, error)
	Update(ctx context.Context, input UpdateNoteInput) (*domain.Note, error)
	Delete(ctx context.Context, ownerID, noteID string) error
	List(ctx context.Context, input ListNotesInput) ([]*domain.Note, error)
}

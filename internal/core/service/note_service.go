package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell-labs/notes-api/internal/core/domain"
	"github.com/inkwell-labs/notes-api/internal/core/ports"
)

// sortFields maps the wire sort key to the stored field name. Anything not
// listed here falls back to the default ordering.
var sortFields = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
}

type NoteService struct {
	repo ports.NoteRepository
	log  zerolog.Logger
}

func NewNoteService(repo ports.NoteRepository, log zerolog.Logger) *NoteService {
	return &NoteService{repo: repo, log: log}
}

func (s *NoteService) Create(ctx context.Context, input ports.CreateNoteInput) (*domain.Note, error) {
	if input.Title == "" || input.Content == "" {
		return nil, fmt.Errorf("%w: title and content are required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	created, err := s.repo.Insert(ctx, &domain.Note{
		UserID:    input.OwnerID,
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.Info().Str("note_id", created.ID).Msg("note created")
	return created, nil
}

func (s *NoteService) Get(ctx context.Context, ownerID, noteID string) (*domain.Note, error) {
	return s.loadOwned(ctx, ownerID, noteID)
}

func (s *NoteService) Update(ctx context.Context, input ports.UpdateNoteInput) (*domain.Note, error) {
	note, err := s.loadOwned(ctx, input.OwnerID, input.NoteID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		note.Title = input.Title
	}
	if input.Content != "" {
		note.Content = input.Content
	}
	note.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, ownerID, noteID string) error {
	if _, err := s.loadOwned(ctx, ownerID, noteID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, noteID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	s.log.Info().Str("note_id", noteID).Msg("note deleted")
	return nil
}

func (s *NoteService) List(ctx context.Context, input ports.ListNotesInput) ([]*domain.Note, error) {
	notes, err := s.repo.List(ctx, ports.NoteFilter{
		OwnerID: input.OwnerID,
		Search:  input.Search,
		Sort:    parseSort(input.SortBy),
	})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// loadOwned fetches a note and enforces the ownership policy: an absent or
// malformed id is ErrNoteNotFound, a note owned by someone else ErrForbidden.
func (s *NoteService) loadOwned(ctx context.Context, ownerID, noteID string) (*domain.Note, error) {
	note, err := s.repo.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note.UserID != ownerID {
		return nil, domain.ErrForbidden
	}
	return note, nil
}

// parseSort interprets "<field>[:asc|:desc]". Unrecognised fields silently
// fall back to newest created first.
func parseSort(sortBy string) ports.NoteSort {
	def := ports.NoteSort{Field: "created_at", Desc: true}
	if sortBy == "" {
		return def
	}

	parts := strings.SplitN(sortBy, ":", 2)
	field, ok := sortFields[parts[0]]
	if !ok {
		return def
	}

	desc := true
	if len(parts) == 2 && parts[1] == "asc" {
		desc = false
	}
	return ports.NoteSort{Field: field, Desc: desc}
}

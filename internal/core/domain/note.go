package domain

import (
	"errors"
	"time"
)

var ErrValidation = errors.New("invalid input")
var ErrNoteNotFound = errors.New("note not found")
var ErrForbidden = errors.New("access forbidden")

// Note is a single user-owned note. UserID is set at creation and never
// changes afterwards; UpdatedAt is refreshed on every mutation.
type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createNoteRequest struct {
	Title   string `json:"title"   validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// updateNoteRequest is a partial update: omitted fields keep their current
// values, so nothing is required here.
type updateNoteRequest struct {
	Title   string `json:"title"   validate:"max=200"`
	Content string `json:"content"`
}

// noteResponse is the transport view of a note. Kept separate from the domain
// type so the JSON contract is not coupled to internal changes.
type noteResponse struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type messageResponse struct {
	Message string `json:"message"`
}

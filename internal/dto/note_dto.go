package dto

import (
	"time"

	"github.com/google/uuid"
)

// Oversized fields are truncated by the service, not rejected, so the
// requests carry no length constraints.
type CreateNoteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateNoteRequest uses pointers so "field absent" and "field set to empty"
// stay distinguishable. A request with both pointers nil is rejected.
type UpdateNoteRequest struct {
	Id          uuid.UUID `validate:"required"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type NoteResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DeleteNoteResponse struct {
	DeletedId uuid.UUID `json:"deleted_id"`
}

type NoteActivityMessage struct {
	Type       string    `json:"type"` // NOTE_CREATED | NOTE_UPDATED | NOTE_DELETED
	NoteId     uuid.UUID `json:"note_id"`
	Title      string    `json:"title"`
	OccurredAt time.Time `json:"occurred_at"`
}

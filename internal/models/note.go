package models

import "time"

// Note types.
const (
	NoteTypeNote        = "note"
	NoteTypeResolution  = "resolution"
	NoteTypeSuppression = "suppression"

	DefaultNoteAuthor = "internal"
)

// Note is one append-only entry in a case's notes array.
type Note struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	Type      string    `json:"type"` // note | resolution | suppression
}

package models

import "time"

// Note types.
const (
	NoteTypeNote = "note"
	NoteTypeTodo = "todo"
)

// DefaultNoteTitle is used when a note is created without a title.
const DefaultNoteTitle = "Untitled"

type Note struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	Type       string    `json:"type"`
	TargetDate *string   `json:"targetDate"`
	Completed  bool      `json:"completed"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ValidNoteType reports whether t is one of the allowed note types.
func ValidNoteType(t string) bool {
	return t == NoteTypeNote || t == NoteTypeTodo
}

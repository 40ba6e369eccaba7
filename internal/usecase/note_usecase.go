package usecase

import (
	"context"

	"cinelog/internal/domain/entity"
)

// AddNoteInput defines the data required to create a note.
type AddNoteInput struct {
	Title  string
	Desc   string
	UserID string
}

// UpdateNoteInput replaces a note's title and description.
type UpdateNoteInput struct {
	NoteID string
	Title  string
	Desc   string
}

// ListNotesOutput returns a user's notes.
type ListNotesOutput struct {
	Notes []*entity.Note
}

// NoteUsecase defines the interface for note-related business operations.
type NoteUsecase interface {
	AddNote(ctx context.Context, input *AddNoteInput) error
	ListNotes(ctx context.Context, userID string) (*ListNotesOutput, error)
	UpdateNote(ctx context.Context, input *UpdateNoteInput) error
	DeleteNote(ctx context.Context, noteID string) error
}

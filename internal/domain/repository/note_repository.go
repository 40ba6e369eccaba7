package repository

import (
	"context"

	"cinelog/internal/domain/entity"
)

// NoteRepository defines the operations for note persistence.
// Update and Delete are idempotent: acting on an absent note is not an error.
type NoteRepository interface {
	// Create persists a new note and assigns its ID.
	Create(ctx context.Context, note *entity.Note) error

	// FindByUserID retrieves all notes owned by a user.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Note, error)

	// Update replaces the title and description of the note with the given ID.
	Update(ctx context.Context, id, title, desc string) error

	// Delete removes the note with the given ID.
	Delete(ctx context.Context, id string) error
}

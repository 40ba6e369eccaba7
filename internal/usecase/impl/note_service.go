package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "cinelog/internal/delivery/context"
	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/repository"
	"cinelog/internal/usecase"
)

// noteService implements the NoteUsecase interface.
type noteService struct {
	noteRepo repository.NoteRepository
	logger   *slog.Logger
}

// NoteServiceParams holds dependencies for noteService, injected by Fx.
type NoteServiceParams struct {
	fx.In

	NoteRepo repository.NoteRepository
	Logger   *slog.Logger
}

// NewNoteService is the constructor for noteService.
func NewNoteService(params NoteServiceParams) usecase.NoteUsecase {
	return &noteService{
		noteRepo: params.NoteRepo,
		logger:   params.Logger,
	}
}

func (srv *noteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddNote creates a note for a user.
func (srv *noteService) AddNote(ctx context.Context, input *usecase.AddNoteInput) error {
	note := &entity.Note{
		Title:  input.Title,
		Desc:   input.Desc,
		UserID: input.UserID,
	}

	if err := srv.noteRepo.Create(ctx, note); err != nil {
		srv.log(ctx).Error("Failed to add note", slog.String("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to add note")
	}

	srv.log(ctx).Debug("Note added", slog.String("noteID", note.ID))

	return nil
}

// ListNotes returns all notes owned by the given user.
func (srv *noteService) ListNotes(ctx context.Context, userID string) (*usecase.ListNotesOutput, error) {
	notes, err := srv.noteRepo.FindByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list notes", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list notes")
	}

	return &usecase.ListNotesOutput{Notes: notes}, nil
}

// UpdateNote replaces a note's title and description.
func (srv *noteService) UpdateNote(ctx context.Context, input *usecase.UpdateNoteInput) error {
	if err := srv.noteRepo.Update(ctx, input.NoteID, input.Title, input.Desc); err != nil {
		srv.log(ctx).Error("Failed to update note", slog.String("noteID", input.NoteID), slog.Any("error", err))

		return errors.Wrap(err, "failed to update note")
	}

	return nil
}

// DeleteNote removes a note.
func (srv *noteService) DeleteNote(ctx context.Context, noteID string) error {
	if err := srv.noteRepo.Delete(ctx, noteID); err != nil {
		srv.log(ctx).Error("Failed to delete note", slog.String("noteID", noteID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete note")
	}

	return nil
}

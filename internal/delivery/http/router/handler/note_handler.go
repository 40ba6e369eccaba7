package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cinelog/internal/delivery/http/response"
	"cinelog/internal/domain/entity"
	"cinelog/internal/usecase"
)

// NoteHandler holds dependencies for note-related handlers.
type NoteHandler struct {
	uc usecase.NoteUsecase
}

// NewNoteHandler is the constructor for NoteHandler, injected by Fx.
func NewNoteHandler(uc usecase.NoteUsecase) *NoteHandler {
	return &NoteHandler{uc: uc}
}

type addNoteRequest struct {
	Title  string `json:"title" validate:"required"`
	Desc   string `json:"desc" validate:"required"`
	UserID string `json:"userID" validate:"required"`
}

type updateNoteRequest struct {
	Title  string `json:"title" validate:"required"`
	Desc   string `json:"desc" validate:"required"`
	NoteID string `json:"NoteID" validate:"required"`
}

type deleteNoteRequest struct {
	NoteID string `json:"NoteID" validate:"required"`
}

type noteView struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Desc   string `json:"desc"`
	UserID string `json:"userID"`
}

type listNotesResponse struct {
	Message string     `json:"message"`
	Notes   []noteView `json:"Notes"`
}

// AddNote creates a note for a user.
func (h *NoteHandler) AddNote(c echo.Context) error {
	var req addNoteRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.AddNoteInput{
		Title:  req.Title,
		Desc:   req.Desc,
		UserID: req.UserID,
	}

	if err := h.uc.AddNote(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Note added successfully")
}

// GetUserNotes returns all notes owned by the user in the query.
func (h *NoteHandler) GetUserNotes(c echo.Context) error {
	userID := c.QueryParam("userID")
	if userID == "" {
		return response.Message(c, http.StatusBadRequest, "userID is required")
	}

	output, err := h.uc.ListNotes(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, listNotesResponse{
		Message: "success",
		Notes:   toNoteViews(output.Notes),
	})
}

// UpdateNote replaces a note's title and description.
func (h *NoteHandler) UpdateNote(c echo.Context) error {
	var req updateNoteRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdateNoteInput{
		NoteID: req.NoteID,
		Title:  req.Title,
		Desc:   req.Desc,
	}

	if err := h.uc.UpdateNote(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Note updated successfully")
}

// DeleteNote removes a note.
func (h *NoteHandler) DeleteNote(c echo.Context) error {
	var req deleteNoteRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.DeleteNote(c.Request().Context(), req.NoteID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Note deleted successfully")
}

func toNoteViews(notes []*entity.Note) []noteView {
	views := make([]noteView, 0, len(notes))
	for _, note := range notes {
		views = append(views, noteView{
			ID:     note.ID,
			Title:  note.Title,
			Desc:   note.Desc,
			UserID: note.UserID,
		})
	}

	return views
}

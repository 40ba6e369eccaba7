package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cinelog/internal/domain/entity"
	mockusecase "cinelog/internal/mocks/usecase"
	"cinelog/internal/usecase"
)

func TestNoteHandler_AddNote(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockNoteUsecase(t)
		uc.EXPECT().AddNote(mock.Anything, &usecase.AddNoteInput{
			Title:  "Watchlist",
			Desc:   "Rewatch the Lang films",
			UserID: "user-1",
		}).Return(nil)

		e := newTestServer(t)
		e.POST("/api/notes/addNote", NewNoteHandler(uc).AddNote)

		rec := doJSON(e, http.MethodPost, "/api/notes/addNote",
			`{"title":"Watchlist","desc":"Rewatch the Lang films","userID":"user-1"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"Note added successfully"}`, rec.Body.String())
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockNoteUsecase(t)

		e := newTestServer(t)
		e.POST("/api/notes/addNote", NewNoteHandler(uc).AddNote)

		rec := doJSON(e, http.MethodPost, "/api/notes/addNote", `{"title":"Watchlist"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"missing required field"}`, rec.Body.String())
	})
}

func TestNoteHandler_GetUserNotes(t *testing.T) {
	t.Parallel()

	t.Run("returns the user's notes", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockNoteUsecase(t)
		uc.EXPECT().ListNotes(mock.Anything, "user-1").
			Return(&usecase.ListNotesOutput{
				Notes: []*entity.Note{
					{ID: "note-1", Title: "Watchlist", Desc: "Rewatch the Lang films", UserID: "user-1"},
				},
			}, nil)

		e := newTestServer(t)
		e.GET("/api/notes/getUserNotes", NewNoteHandler(uc).GetUserNotes)

		rec := doJSON(e, http.MethodGet, "/api/notes/getUserNotes?userID=user-1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"message": "success",
			"Notes": [
				{"id":"note-1","title":"Watchlist","desc":"Rewatch the Lang films","userID":"user-1"}
			]
		}`, rec.Body.String())
	})

	t.Run("missing userID", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockNoteUsecase(t)

		e := newTestServer(t)
		e.GET("/api/notes/getUserNotes", NewNoteHandler(uc).GetUserNotes)

		rec := doJSON(e, http.MethodGet, "/api/notes/getUserNotes", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"userID is required"}`, rec.Body.String())
	})
}

func TestNoteHandler_UpdateNote(t *testing.T) {
	t.Parallel()

	uc := mockusecase.NewMockNoteUsecase(t)
	uc.EXPECT().UpdateNote(mock.Anything, &usecase.UpdateNoteInput{
		NoteID: "note-1",
		Title:  "Watchlist v2",
		Desc:   "Add the Murnau films",
	}).Return(nil)

	e := newTestServer(t)
	e.PUT("/api/notes/updateNote", NewNoteHandler(uc).UpdateNote)

	rec := doJSON(e, http.MethodPut, "/api/notes/updateNote",
		`{"title":"Watchlist v2","desc":"Add the Murnau films","NoteID":"note-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Note updated successfully"}`, rec.Body.String())
}

func TestNoteHandler_DeleteNote(t *testing.T) {
	t.Parallel()

	uc := mockusecase.NewMockNoteUsecase(t)
	uc.EXPECT().DeleteNote(mock.Anything, "note-1").Return(nil)

	e := newTestServer(t)
	e.DELETE("/api/notes/deleteNote", NewNoteHandler(uc).DeleteNote)

	rec := doJSON(e, http.MethodDelete, "/api/notes/deleteNote", `{"NoteID":"note-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Note deleted successfully"}`, rec.Body.String())
}

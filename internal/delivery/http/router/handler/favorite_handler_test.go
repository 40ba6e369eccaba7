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

func TestFavoriteHandler_AddToFavorites(t *testing.T) {
	t.Parallel()

	body := `{"movieName":"Metropolis","imgUrl":"https://img.example.com/m.jpg","movieID":"tt0017136","userID":"user-1"}`

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockFavoriteUsecase(t)
		uc.EXPECT().AddFavorite(mock.Anything, &usecase.AddFavoriteInput{
			MovieName: "Metropolis",
			ImgURL:    "https://img.example.com/m.jpg",
			MovieID:   "tt0017136",
			UserID:    "user-1",
		}).Return(nil)

		e := newTestServer(t)
		e.POST("/api/favorites/addToFavorites", NewFavoriteHandler(uc).AddToFavorites)

		rec := doJSON(e, http.MethodPost, "/api/favorites/addToFavorites", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"Movie added to favorites"}`, rec.Body.String())
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockFavoriteUsecase(t)

		e := newTestServer(t)
		e.POST("/api/favorites/addToFavorites", NewFavoriteHandler(uc).AddToFavorites)

		rec := doJSON(e, http.MethodPost, "/api/favorites/addToFavorites", `{"movieName":"Metropolis"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"missing required field"}`, rec.Body.String())
	})
}

func TestFavoriteHandler_GetFavorites(t *testing.T) {
	t.Parallel()

	t.Run("returns the user's favorites", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockFavoriteUsecase(t)
		uc.EXPECT().ListFavorites(mock.Anything, "user-1").
			Return(&usecase.ListFavoritesOutput{
				Favorites: []*entity.Favorite{
					{ID: "fav-1", MovieName: "Metropolis", ImgURL: "https://img.example.com/m.jpg", MovieID: "tt0017136", UserID: "user-1"},
				},
			}, nil)

		e := newTestServer(t)
		e.GET("/api/favorites/getFavorites", NewFavoriteHandler(uc).GetFavorites)

		rec := doJSON(e, http.MethodGet, "/api/favorites/getFavorites?userID=user-1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"message": "success",
			"Favorites": [
				{"id":"fav-1","movieName":"Metropolis","imgUrl":"https://img.example.com/m.jpg","movieID":"tt0017136","userID":"user-1"}
			]
		}`, rec.Body.String())
	})

	t.Run("missing userID", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockFavoriteUsecase(t)

		e := newTestServer(t)
		e.GET("/api/favorites/getFavorites", NewFavoriteHandler(uc).GetFavorites)

		rec := doJSON(e, http.MethodGet, "/api/favorites/getFavorites", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"userID is required"}`, rec.Body.String())
	})
}

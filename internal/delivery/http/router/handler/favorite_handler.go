package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cinelog/internal/delivery/http/response"
	"cinelog/internal/domain/entity"
	"cinelog/internal/usecase"
)

// FavoriteHandler holds dependencies for favorite-related handlers.
type FavoriteHandler struct {
	uc usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

type addFavoriteRequest struct {
	MovieName string `json:"movieName" validate:"required"`
	ImgURL    string `json:"imgUrl" validate:"required"`
	UserID    string `json:"userID" validate:"required"`
	MovieID   string `json:"movieID" validate:"required"`
}

type favoriteView struct {
	ID        string `json:"id"`
	MovieName string `json:"movieName"`
	ImgURL    string `json:"imgUrl"`
	MovieID   string `json:"movieID"`
	UserID    string `json:"userID"`
}

type listFavoritesResponse struct {
	Message   string         `json:"message"`
	Favorites []favoriteView `json:"Favorites"`
}

// AddToFavorites bookmarks a movie for a user.
func (h *FavoriteHandler) AddToFavorites(c echo.Context) error {
	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.AddFavoriteInput{
		MovieName: req.MovieName,
		ImgURL:    req.ImgURL,
		MovieID:   req.MovieID,
		UserID:    req.UserID,
	}

	if err := h.uc.AddFavorite(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Movie added to favorites")
}

// GetFavorites returns all favorites owned by the user in the query.
func (h *FavoriteHandler) GetFavorites(c echo.Context) error {
	userID := c.QueryParam("userID")
	if userID == "" {
		return response.Message(c, http.StatusBadRequest, "userID is required")
	}

	output, err := h.uc.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, listFavoritesResponse{
		Message:   "success",
		Favorites: toFavoriteViews(output.Favorites),
	})
}

func toFavoriteViews(favorites []*entity.Favorite) []favoriteView {
	views := make([]favoriteView, 0, len(favorites))
	for _, favorite := range favorites {
		views = append(views, favoriteView{
			ID:        favorite.ID,
			MovieName: favorite.MovieName,
			ImgURL:    favorite.ImgURL,
			MovieID:   favorite.MovieID,
			UserID:    favorite.UserID,
		})
	}

	return views
}

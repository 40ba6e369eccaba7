package usecase

import (
	"context"

	"cinelog/internal/domain/entity"
)

// AddFavoriteInput defines the data required to bookmark a movie.
type AddFavoriteInput struct {
	MovieName string
	ImgURL    string
	MovieID   string
	UserID    string
}

// ListFavoritesOutput returns a user's favorites.
type ListFavoritesOutput struct {
	Favorites []*entity.Favorite
}

// FavoriteUsecase defines the interface for favorite-related business operations.
type FavoriteUsecase interface {
	AddFavorite(ctx context.Context, input *AddFavoriteInput) error
	ListFavorites(ctx context.Context, userID string) (*ListFavoritesOutput, error)
}

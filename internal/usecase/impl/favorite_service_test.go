package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinelog/internal/domain/entity"
	"cinelog/internal/errors"
	mockrepository "cinelog/internal/mocks/repository"
	"cinelog/internal/usecase"
)

func newFavoriteService(t *testing.T) (usecase.FavoriteUsecase, *mockrepository.MockFavoriteRepository) {
	t.Helper()

	favoriteRepo := mockrepository.NewMockFavoriteRepository(t)
	svc := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: favoriteRepo,
		Logger:       newDiscardLogger(),
	})

	return svc, favoriteRepo
}

func TestFavoriteService_AddFavorite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	input := &usecase.AddFavoriteInput{
		MovieName: "Metropolis",
		ImgURL:    "https://img.example.com/metropolis.jpg",
		MovieID:   "tt0017136",
		UserID:    "user-1",
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc, favoriteRepo := newFavoriteService(t)

		favoriteRepo.EXPECT().Create(ctx, &entity.Favorite{
			MovieName: "Metropolis",
			ImgURL:    "https://img.example.com/metropolis.jpg",
			MovieID:   "tt0017136",
			UserID:    "user-1",
		}).Return(nil)

		require.NoError(t, svc.AddFavorite(ctx, input))
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		svc, favoriteRepo := newFavoriteService(t)

		favoriteRepo.EXPECT().Create(ctx, &entity.Favorite{
			MovieName: "Metropolis",
			ImgURL:    "https://img.example.com/metropolis.jpg",
			MovieID:   "tt0017136",
			UserID:    "user-1",
		}).Return(errors.New("store offline"))

		require.Error(t, svc.AddFavorite(ctx, input))
	})
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns the user's favorites", func(t *testing.T) {
		t.Parallel()

		svc, favoriteRepo := newFavoriteService(t)

		favorites := []*entity.Favorite{
			{ID: "fav-1", MovieName: "Metropolis", UserID: "user-1"},
			{ID: "fav-2", MovieName: "Sunrise", UserID: "user-1"},
		}
		favoriteRepo.EXPECT().FindByUserID(ctx, "user-1").Return(favorites, nil)

		output, err := svc.ListFavorites(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, favorites, output.Favorites)
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		svc, favoriteRepo := newFavoriteService(t)

		favoriteRepo.EXPECT().FindByUserID(ctx, "user-1").Return(nil, nil)

		output, err := svc.ListFavorites(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, output.Favorites)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		svc, favoriteRepo := newFavoriteService(t)

		favoriteRepo.EXPECT().FindByUserID(ctx, "user-1").Return(nil, errors.New("store offline"))

		_, err := svc.ListFavorites(ctx, "user-1")
		require.Error(t, err)
	})
}

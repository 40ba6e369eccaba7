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

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddFavorite bookmarks a movie for a user.
func (srv *favoriteService) AddFavorite(ctx context.Context, input *usecase.AddFavoriteInput) error {
	favorite := &entity.Favorite{
		MovieName: input.MovieName,
		ImgURL:    input.ImgURL,
		MovieID:   input.MovieID,
		UserID:    input.UserID,
	}

	if err := srv.favoriteRepo.Create(ctx, favorite); err != nil {
		srv.log(ctx).Error("Failed to add favorite", slog.String("userID", input.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to add favorite")
	}

	srv.log(ctx).Debug("Favorite added", slog.String("favoriteID", favorite.ID))

	return nil
}

// ListFavorites returns all favorites owned by the given user.
func (srv *favoriteService) ListFavorites(ctx context.Context, userID string) (*usecase.ListFavoritesOutput, error) {
	favorites, err := srv.favoriteRepo.FindByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list favorites", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return &usecase.ListFavoritesOutput{Favorites: favorites}, nil
}

package repository

import (
	"context"

	"cinelog/internal/domain/entity"
)

// FavoriteRepository defines the operations for favorite persistence.
type FavoriteRepository interface {
	// Create persists a new favorite and assigns its ID.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// FindByUserID retrieves all favorites owned by a user.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Favorite, error)
}

package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/repository"
	"cinelog/internal/infra/persistence/model"
)

// favoriteRepository is the MongoDB implementation of repository.FavoriteRepository.
type favoriteRepository struct {
	coll *mongo.Collection
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *mongo.Database) repository.FavoriteRepository {
	return &favoriteRepository{coll: db.Collection(model.CollectionFavorites)}
}

// Create inserts a new favorite document and writes the assigned ID back
// onto the entity.
func (r *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	userID, err := bson.ObjectIDFromHex(favorite.UserID)
	if err != nil {
		return errors.Wrap(err, "parse favorite user id")
	}

	doc := &model.FavoriteModel{
		MovieName: favorite.MovieName,
		ImgURL:    favorite.ImgURL,
		MovieID:   favorite.MovieID,
		UserID:    userID,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "insert favorite")
	}

	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		favorite.ID = id.Hex()
	}

	return nil
}

// FindByUserID returns all favorites owned by the given user.
func (r *favoriteRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	ownerID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.Wrap(err, "parse favorite user id")
	}

	cursor, err := r.coll.Find(ctx, bson.D{{Key: "userID", Value: ownerID}})
	if err != nil {
		return nil, errors.Wrap(err, "find favorites by user id")
	}

	var docs []model.FavoriteModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode favorites")
	}

	favorites := make([]*entity.Favorite, 0, len(docs))
	for i := range docs {
		favorites = append(favorites, docs[i].ToEntity())
	}

	return favorites, nil
}

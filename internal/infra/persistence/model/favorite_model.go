package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"cinelog/internal/domain/entity"
)

// FavoriteModel mirrors the 'favorites' collection.
type FavoriteModel struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	MovieName string        `bson:"movieName"`
	ImgURL    string        `bson:"imgUrl"`
	MovieID   string        `bson:"movieID"`
	UserID    bson.ObjectID `bson:"userID"`
}

// CollectionFavorites is the collection name for favorite documents.
const CollectionFavorites = "favorites"

// ToEntity converts the document into a domain entity.
func (m *FavoriteModel) ToEntity() *entity.Favorite {
	return &entity.Favorite{
		ID:        m.ID.Hex(),
		MovieName: m.MovieName,
		ImgURL:    m.ImgURL,
		MovieID:   m.MovieID,
		UserID:    m.UserID.Hex(),
	}
}

// Package model contains the document shapes persisted in MongoDB.
// They are kept separate from the domain entities so bson concerns never
// leak into the domain layer.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"cinelog/internal/domain/entity"
)

// UserModel mirrors the 'users' collection. The collection carries a
// unique index on email; MongoDB assigns the ObjectID on insert.
type UserModel struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	FirstName    string        `bson:"first_name"`
	LastName     string        `bson:"last_name"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password"`
	Age          int           `bson:"age"`
	CreatedAt    time.Time     `bson:"created_at"`
}

// CollectionUsers is the collection name for user documents.
const CollectionUsers = "users"

// ToEntity converts the document into a domain entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:           m.ID.Hex(),
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Age:          m.Age,
		CreatedAt:    m.CreatedAt,
	}
}

// UserModelFromEntity converts a domain entity into its document shape.
// A zero or malformed entity ID leaves the ObjectID empty so the store
// assigns one on insert.
func UserModelFromEntity(user *entity.User) *UserModel {
	m := &UserModel{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Age:          user.Age,
		CreatedAt:    user.CreatedAt,
	}
	if id, err := bson.ObjectIDFromHex(user.ID); err == nil {
		m.ID = id
	}

	return m
}

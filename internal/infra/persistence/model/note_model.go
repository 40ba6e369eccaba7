package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"cinelog/internal/domain/entity"
)

// NoteModel mirrors the 'notes' collection.
type NoteModel struct {
	ID     bson.ObjectID `bson:"_id,omitempty"`
	Title  string        `bson:"title"`
	Desc   string        `bson:"desc"`
	UserID bson.ObjectID `bson:"userID"`
}

// CollectionNotes is the collection name for note documents.
const CollectionNotes = "notes"

// ToEntity converts the document into a domain entity.
func (m *NoteModel) ToEntity() *entity.Note {
	return &entity.Note{
		ID:     m.ID.Hex(),
		Title:  m.Title,
		Desc:   m.Desc,
		UserID: m.UserID.Hex(),
	}
}

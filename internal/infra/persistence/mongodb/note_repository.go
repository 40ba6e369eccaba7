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

// noteRepository is the MongoDB implementation of repository.NoteRepository.
type noteRepository struct {
	coll *mongo.Collection
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(db *mongo.Database) repository.NoteRepository {
	return &noteRepository{coll: db.Collection(model.CollectionNotes)}
}

// Create inserts a new note document and writes the assigned ID back onto
// the entity.
func (r *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	userID, err := bson.ObjectIDFromHex(note.UserID)
	if err != nil {
		return errors.Wrap(err, "parse note user id")
	}

	doc := &model.NoteModel{
		Title:  note.Title,
		Desc:   note.Desc,
		UserID: userID,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "insert note")
	}

	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		note.ID = id.Hex()
	}

	return nil
}

// FindByUserID returns all notes owned by the given user.
func (r *noteRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Note, error) {
	ownerID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.Wrap(err, "parse note user id")
	}

	cursor, err := r.coll.Find(ctx, bson.D{{Key: "userID", Value: ownerID}})
	if err != nil {
		return nil, errors.Wrap(err, "find notes by user id")
	}

	var docs []model.NoteModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode notes")
	}

	notes := make([]*entity.Note, 0, len(docs))
	for i := range docs {
		notes = append(notes, docs[i].ToEntity())
	}

	return notes, nil
}

// Update replaces the note's title and description. Updating an absent
// note is not an error.
func (r *noteRepository) Update(ctx context.Context, id, title, desc string) error {
	noteID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrap(err, "parse note id")
	}

	_, err = r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: noteID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "title", Value: title},
			{Key: "desc", Value: desc},
		}}})

	return errors.Wrap(err, "update note")
}

// Delete removes the note. Deleting an absent note is not an error.
func (r *noteRepository) Delete(ctx context.Context, id string) error {
	noteID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrap(err, "parse note id")
	}

	_, err = r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: noteID}})

	return errors.Wrap(err, "delete note")
}

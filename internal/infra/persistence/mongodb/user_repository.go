package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/repository"
	"cinelog/internal/infra/persistence/model"
)

// userRepository is the MongoDB implementation of repository.UserRepository.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(model.CollectionUsers)}
}

// Create inserts a new user document and writes the assigned ID back onto
// the entity. A collision on the unique email index maps to ErrDuplicateEmail.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	user.CreatedAt = time.Now()

	doc := model.UserModelFromEntity(user)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.Wrap(repository.ErrDuplicateEmail, "insert user")
		}

		return errors.Wrap(err, "insert user")
	}

	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = id.Hex()
	}

	return nil
}

// FindByEmail looks up a single user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc model.UserModel
	if err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.Wrap(repository.ErrUserNotFound, "find user by email")
		}

		return nil, errors.Wrap(err, "find user by email")
	}

	return doc.ToEntity(), nil
}

// List returns a page of users in insertion order.
func (r *userRepository) List(ctx context.Context, skip, limit int) ([]*entity.User, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)))
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}

	var docs []model.UserModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode users page")
	}

	users := make([]*entity.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].ToEntity())
	}

	return users, nil
}

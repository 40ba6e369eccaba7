// Package mongodb implements the repository interfaces on top of MongoDB.
package mongodb

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"

	"cinelog/config"
	"cinelog/internal/domain/lifecycle"
	"cinelog/internal/infra/persistence/model"
)

// Params defines the dependencies for the MongoDB connection, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the configured database handle.
// The connection is verified and indexes are ensured on fx startup, and
// the client is disconnected on shutdown.
func New(params Params) (*mongo.Database, error) {
	if params.Config.Mongo == nil {
		return nil, errors.New("mongo config must be provided")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mongo client")
	}

	db := client.Database(params.Config.Mongo.Database)

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping mongo")
			}
			if err := ensureIndexes(ctx, db); err != nil {
				return err
			}
			params.Logger.Info("MongoDB connected", slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			params.Logger.Info("Disconnecting MongoDB")

			return errors.Wrap(client.Disconnect(shutdownCtx), "failed to disconnect mongo")
		},
	})

	return db, nil
}

// ensureIndexes creates the unique index on users.email. The index is the
// arbiter for concurrent signups with the same email: at most one insert
// wins, the rest fail with a duplicate key error.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(model.CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return errors.Wrap(err, "failed to create unique email index")
}

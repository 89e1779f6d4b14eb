// Package mongodb wires the Mongo client to the per-entity repositories and
// bootstraps the unique indexes the data model relies on.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mygymbro/mygymbro/internal/server/repositories/exercises"
	"github.com/mygymbro/mygymbro/internal/server/repositories/meals"
	"github.com/mygymbro/mygymbro/internal/server/repositories/userexercises"
	"github.com/mygymbro/mygymbro/internal/server/repositories/users"
)

// RepositoryManager hands out the entity repositories backed by a single
// database handle.
type RepositoryManager interface {
	Users() users.Repository
	Exercises() exercises.Repository
	Meals() meals.Repository
	UserExercises() userexercises.Repository
	Close(ctx context.Context) error
}

type MongoRepositoryManager struct {
	client        *mongo.Client
	users         users.Repository
	exercises     exercises.Repository
	meals         meals.Repository
	userExercises userexercises.Repository
}

func (m *MongoRepositoryManager) Users() users.Repository { return m.users }

func (m *MongoRepositoryManager) Exercises() exercises.Repository { return m.exercises }

func (m *MongoRepositoryManager) Meals() meals.Repository { return m.meals }

func (m *MongoRepositoryManager) UserExercises() userexercises.Repository {
	return m.userExercises
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ensureIndexes creates the uniqueness constraints: username and email on
// users, name on both catalog collections, and the (userID, exerciseID)
// pair on userexercises. Index creation is idempotent.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"exercises": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		"meals": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		"userexercises": {
			{Keys: bson.D{{Key: "userID", Value: 1}, {Key: "exerciseID", Value: 1}}, Options: unique},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("index creation error on %s: %w", coll, err)
		}
	}

	return nil
}

// NewMongoRepositoryManager connects, pings, ensures indexes and builds the
// repositories.
func NewMongoRepositoryManager(ctx context.Context, uri, database string) (RepositoryManager, error) {

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("db connect error: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	db := client.Database(database)

	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	return &MongoRepositoryManager{
		client:        client,
		users:         users.NewMongoRepository(db.Collection("users")),
		exercises:     exercises.NewMongoRepository(db.Collection("exercises")),
		meals:         meals.NewMongoRepository(db.Collection("meals")),
		userExercises: userexercises.NewMongoRepository(db.Collection("userexercises")),
	}, nil
}

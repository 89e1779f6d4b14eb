package exercises

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mygymbro/mygymbro/internal/common"
	"github.com/mygymbro/mygymbro/internal/server/models"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) Create(ctx context.Context, e *models.Exercise) error {
	if e.OtherMuscles == nil {
		e.OtherMuscles = []string{}
	}

	_, err := r.coll.InsertOne(ctx, e)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return common.ErrDuplicateKey
		}
		return fmt.Errorf("error inserting exercise: %w", err)
	}
	return nil
}

func (r *MongoRepository) ListVisible(ctx context.Context, requesterID string) ([]models.Exercise, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"creator": requesterID},
		bson.M{"isVisible": true},
	}}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing exercises: %w", err)
	}

	list := []models.Exercise{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("error decoding exercises: %w", err)
	}
	return list, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*models.Exercise, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	e := &models.Exercise{}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error finding exercise: %w", err)
	}
	return e, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("error deleting exercise: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

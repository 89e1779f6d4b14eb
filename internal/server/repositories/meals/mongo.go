package meals

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

func (r *MongoRepository) Create(ctx context.Context, m *models.Meal) error {
	_, err := r.coll.InsertOne(ctx, m)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return common.ErrDuplicateKey
		}
		return fmt.Errorf("error inserting meal: %w", err)
	}
	return nil
}

func (r *MongoRepository) ListVisible(ctx context.Context, requesterID string) ([]models.Meal, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"creator": requesterID},
		bson.M{"isVisible": true},
	}}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing meals: %w", err)
	}

	list := []models.Meal{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("error decoding meals: %w", err)
	}
	return list, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*models.Meal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}

	m := &models.Meal{}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error finding meal: %w", err)
	}
	return m, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return common.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("error deleting meal: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

package userexercises

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mygymbro/mygymbro/internal/common"
	"github.com/mygymbro/mygymbro/internal/server/models"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) Find(ctx context.Context, userID, exerciseID string) (*models.UserExerciseStat, error) {
	stat := &models.UserExerciseStat{}
	err := r.coll.FindOne(ctx, bson.M{"userID": userID, "exerciseID": exerciseID}).Decode(stat)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error finding user exercise stat: %w", err)
	}
	return stat, nil
}

func (r *MongoRepository) AppendSets(ctx context.Context, userID, exerciseID string,
	weights []float64, reps []int, dates []string,
	seedRecord float64, seedDate string) error {

	filter := bson.M{"userID": userID, "exerciseID": exerciseID}
	update := bson.M{
		"$push": bson.M{
			"pastSetWeight": bson.M{"$each": weights},
			"pastSetReps":   bson.M{"$each": reps},
			"pastDates":     bson.M{"$each": dates},
		},
		// only takes effect when the upsert inserts a fresh document
		"$setOnInsert": bson.M{
			"personalRecord":     seedRecord,
			"personalRecordDate": seedDate,
		},
	}

	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		// two concurrent first-ever completions can both try to insert;
		// the unique (userID, exerciseID) index fails one of them
		if mongo.IsDuplicateKeyError(err) {
			return common.ErrDuplicateKey
		}
		return fmt.Errorf("error appending sets: %w", err)
	}
	return nil
}

func (r *MongoRepository) RaiseRecord(ctx context.Context, userID, exerciseID string, weight float64, date string) error {
	filter := bson.M{
		"userID":         userID,
		"exerciseID":     exerciseID,
		"personalRecord": bson.M{"$lt": weight},
	}
	update := bson.M{"$set": bson.M{
		"personalRecord":     weight,
		"personalRecordDate": date,
	}}

	// MatchedCount == 0 simply means the record stands
	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("error raising personal record: %w", err)
	}
	return nil
}

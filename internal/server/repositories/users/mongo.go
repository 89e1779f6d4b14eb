package users

import (
	"context"
	"errors"
	"fmt"
	"time"

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

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.ErrNotFound
	}
	return oid, nil
}

func (r *MongoRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.DateCreated = time.Now()
	if user.DaysAtGym == nil {
		user.DaysAtGym = []models.WorkoutSession{}
	}
	if user.MealDays == nil {
		user.MealDays = []models.MealDay{}
	}
	if user.ProgressPics == nil {
		user.ProgressPics = []string{}
	}

	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.ErrDuplicateKey
		}
		return nil, fmt.Errorf("error inserting user: %w", err)
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	return user, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	user := &models.User{}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	return user, nil
}

func (r *MongoRepository) UpdateProfile(ctx context.Context, id string, upd *models.ProfileUpdate) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Age != nil {
		set["age"] = *upd.Age
	}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	if upd.Sex != nil {
		set["sex"] = *upd.Sex
	}
	if upd.Weight != nil {
		set["weight"] = *upd.Weight
	}
	if upd.Height != nil {
		set["height"] = *upd.Height
	}
	if upd.BodyFat != nil {
		set["bodyFat"] = *upd.BodyFat
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return common.ErrDuplicateKey
		}
		return fmt.Errorf("error updating profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *MongoRepository) SetPassword(ctx context.Context, id string, hash string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"password": hash}})
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// FinishSession pushes the session onto daysAtGym and clears currentWorkout
// in a single update, so no request can observe the appended session next to
// a stale in-progress snapshot.
func (r *MongoRepository) FinishSession(ctx context.Context, id string, s *models.WorkoutSession) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$push": bson.M{"daysAtGym": s},
		"$set":  bson.M{"currentWorkout": nil},
	}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("error finishing session: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *MongoRepository) SetCurrentWorkout(ctx context.Context, id string, w *models.WorkoutSession) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"currentWorkout": w}})
	if err != nil {
		return fmt.Errorf("error saving current workout: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *MongoRepository) AppendMealDay(ctx context.Context, id string, d models.MealDay) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$push": bson.M{"mealDays": d}})
	if err != nil {
		return fmt.Errorf("error logging meal day: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *MongoRepository) AppendProgressPic(ctx context.Context, id string, key string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$push": bson.M{"progressPics": key}})
	if err != nil {
		return fmt.Errorf("error saving progress pic key: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

package users

import (
	"context"

	"github.com/mygymbro/mygymbro/internal/server/models"
)

// Repository is the persistence boundary for user documents. Implementations
// must not span multiple documents in a single call: every method is one
// single-document operation, which is also the only atomicity guarantee.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, upd *models.ProfileUpdate) error
	SetPassword(ctx context.Context, id string, hash string) error

	// FinishSession appends the finalized session to daysAtGym and clears
	// currentWorkout in one atomic document update.
	FinishSession(ctx context.Context, id string, s *models.WorkoutSession) error

	// SetCurrentWorkout overwrites the in-progress snapshot wholesale;
	// a nil workout clears it.
	SetCurrentWorkout(ctx context.Context, id string, w *models.WorkoutSession) error

	AppendMealDay(ctx context.Context, id string, d models.MealDay) error
	AppendProgressPic(ctx context.Context, id string, key string) error
}

package userexercises

import (
	"context"

	"github.com/mygymbro/mygymbro/internal/server/models"
)

// Repository persists per-(user, exercise) history. The pair is unique; both
// mutating methods are single-document atomic operators, so concurrent
// session completions interleave without losing sets.
type Repository interface {
	// Find returns the stat document, or common.ErrNotFound when the user
	// has never logged the exercise.
	Find(ctx context.Context, userID, exerciseID string) (*models.UserExerciseStat, error)

	// AppendSets pushes one session's weights, reps and dates onto the
	// three history arrays, upserting the document on first completion.
	// On insert the personal record is seeded with seedRecord/seedDate.
	AppendSets(ctx context.Context, userID, exerciseID string,
		weights []float64, reps []int, dates []string,
		seedRecord float64, seedDate string) error

	// RaiseRecord sets the personal record to weight (and its date) if and
	// only if the stored record is lower, i.e. a compare-and-set.
	RaiseRecord(ctx context.Context, userID, exerciseID string, weight float64, date string) error
}

package services

import (
	"context"
	"fmt"

	"github.com/mygymbro/mygymbro/internal/server/models"
	"github.com/mygymbro/mygymbro/internal/server/repositories/userexercises"
	"github.com/mygymbro/mygymbro/internal/server/repositories/users"
	"github.com/mygymbro/mygymbro/internal/server/validation"
)

// WorkoutService is the ingestion engine: it commits finished sessions to
// the user's history and folds each session entry into the per-exercise
// running stats and personal record.
type WorkoutService struct {
	users users.Repository
	stats userexercises.Repository
}

func NewWorkoutService(u users.Repository, s userexercises.Repository) *WorkoutService {
	return &WorkoutService{users: u, stats: s}
}

func maxWeight(weights []float64) float64 {
	max := weights[0]
	for _, w := range weights[1:] {
		if w > max {
			max = w
		}
	}
	return max
}

// CompleteSession finalizes a submission. The session append and the
// currentWorkout clear happen in one atomic document update; the per-entry
// stat folds that follow are sequential and independent: a failure at entry
// k aborts the remaining entries but does not undo entries 1..k-1 or the
// committed session. The caller receives a single aggregate error.
func (s *WorkoutService) CompleteSession(ctx context.Context, userID string, session *models.WorkoutSession, durationMinutes int) error {

	if err := validation.SessionEntries(session.Entries); err != nil {
		return err
	}

	session.Duration = durationMinutes

	if err := s.users.FinishSession(ctx, userID, session); err != nil {
		return fmt.Errorf("error committing session: %w", err)
	}

	for _, entry := range session.Entries {
		max := maxWeight(entry.Weight)
		recordDate := entry.Dates[0]

		err := s.stats.AppendSets(ctx, userID, entry.ExerciseID,
			entry.Weight, entry.Sets, entry.Dates, max, recordDate)
		if err != nil {
			return fmt.Errorf("error updating stats for exercise %s: %w", entry.ExerciseID, err)
		}

		// no-op unless max beats the stored record
		err = s.stats.RaiseRecord(ctx, userID, entry.ExerciseID, max, recordDate)
		if err != nil {
			return fmt.Errorf("error updating record for exercise %s: %w", entry.ExerciseID, err)
		}
	}

	return nil
}

// SaveCurrent overwrites the in-progress snapshot wholesale, last write wins.
func (s *WorkoutService) SaveCurrent(ctx context.Context, userID string, w *models.WorkoutSession) error {
	return s.users.SetCurrentWorkout(ctx, userID, w)
}

// ClearCurrent empties the in-progress snapshot; idempotent.
func (s *WorkoutService) ClearCurrent(ctx context.Context, userID string) error {
	return s.users.SetCurrentWorkout(ctx, userID, nil)
}

// Sessions returns the user's completed session history.
func (s *WorkoutService) Sessions(ctx context.Context, userID string) ([]models.WorkoutSession, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.DaysAtGym, nil
}

// History returns the stat document for (userID, exerciseID), or
// common.ErrNotFound when the user has never logged that exercise; the
// caller turns that into a "no history" response, not a failure.
func (s *WorkoutService) History(ctx context.Context, userID, exerciseID string) (*models.UserExerciseStat, error) {
	return s.stats.Find(ctx, userID, exerciseID)
}

func (s *WorkoutService) LogMealDay(ctx context.Context, userID string, d models.MealDay) error {
	return s.users.AppendMealDay(ctx, userID, d)
}

func (s *WorkoutService) MealDays(ctx context.Context, userID string) ([]models.MealDay, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.MealDays, nil
}

package services

import (
	"context"

	"github.com/mygymbro/mygymbro/internal/common"
	"github.com/mygymbro/mygymbro/internal/server/models"
	"github.com/mygymbro/mygymbro/internal/server/repositories/exercises"
	"github.com/mygymbro/mygymbro/internal/server/repositories/meals"
	"github.com/mygymbro/mygymbro/internal/server/repositories/users"
	"github.com/mygymbro/mygymbro/internal/server/validation"
)

// CatalogService manages the shared exercise and meal reference data.
// Entries are visible to their creator and, when flagged visible, to
// everyone; only the creator may delete an entry. Deletion does not cascade
// into stats or session history; recorded history is immutable.
type CatalogService struct {
	exercises exercises.Repository
	meals     meals.Repository
	users     users.Repository
}

func NewCatalogService(e exercises.Repository, m meals.Repository, u users.Repository) *CatalogService {
	return &CatalogService{exercises: e, meals: m, users: u}
}

// CreateExercise validates the entry and stores it with the requester as
// creator. The creator always comes from the session, never the payload.
func (s *CatalogService) CreateExercise(ctx context.Context, creatorID string, e *models.Exercise) error {
	if err := validation.NewExercise(e); err != nil {
		return err
	}

	e.Creator = creatorID
	if e.Description == "" {
		e.Description = "None"
	}

	return s.exercises.Create(ctx, e)
}

func (s *CatalogService) Exercises(ctx context.Context, requesterID string) ([]models.Exercise, error) {
	return s.exercises.ListVisible(ctx, requesterID)
}

// DeleteExercise removes an entry after the ownership check.
func (s *CatalogService) DeleteExercise(ctx context.Context, requesterID, id string) error {
	e, err := s.exercises.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if e.Creator != requesterID {
		return common.ErrNotAuthorized
	}

	return s.exercises.Delete(ctx, id)
}

// ExerciseWithCreator returns the entry plus its creator's username.
func (s *CatalogService) ExerciseWithCreator(ctx context.Context, id string) (*models.Exercise, string, error) {
	e, err := s.exercises.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	creatorName := ""
	if creator, err := s.users.FindByID(ctx, e.Creator); err == nil {
		creatorName = creator.Username
	}

	return e, creatorName, nil
}

func (s *CatalogService) CreateMeal(ctx context.Context, creatorID string, m *models.Meal) error {
	if err := validation.NewMeal(m); err != nil {
		return err
	}

	m.Creator = creatorID
	if m.Description == "" {
		m.Description = "None"
	}

	return s.meals.Create(ctx, m)
}

func (s *CatalogService) Meals(ctx context.Context, requesterID string) ([]models.Meal, error) {
	return s.meals.ListVisible(ctx, requesterID)
}

func (s *CatalogService) DeleteMeal(ctx context.Context, requesterID, id string) error {
	m, err := s.meals.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if m.Creator != requesterID {
		return common.ErrNotAuthorized
	}

	return s.meals.Delete(ctx, id)
}

package inmemory

import (
	"context"

	"github.com/mygymbro/mygymbro/internal/server/repositories/exercises"
	"github.com/mygymbro/mygymbro/internal/server/repositories/meals"
	"github.com/mygymbro/mygymbro/internal/server/repositories/userexercises"
	"github.com/mygymbro/mygymbro/internal/server/repositories/users"
)

// compile-time interface checks
var (
	_ users.Repository         = (*UsersRepository)(nil)
	_ exercises.Repository     = (*ExercisesRepository)(nil)
	_ meals.Repository         = (*MealsRepository)(nil)
	_ userexercises.Repository = (*UserExercisesRepository)(nil)
)

// Manager bundles the in-memory repositories behind the same accessors as
// the Mongo manager.
type Manager struct {
	users         *UsersRepository
	exercises     *ExercisesRepository
	meals         *MealsRepository
	userExercises *UserExercisesRepository
}

func NewManager() *Manager {
	return &Manager{
		users:         NewUsersRepository(),
		exercises:     NewExercisesRepository(),
		meals:         NewMealsRepository(),
		userExercises: NewUserExercisesRepository(),
	}
}

func (m *Manager) Users() users.Repository { return m.users }

func (m *Manager) Exercises() exercises.Repository { return m.exercises }

func (m *Manager) Meals() meals.Repository { return m.meals }

func (m *Manager) UserExercises() userexercises.Repository { return m.userExercises }

func (m *Manager) Close(ctx context.Context) error { return nil }

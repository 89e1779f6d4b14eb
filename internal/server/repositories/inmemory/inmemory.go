// Package inmemory provides map-backed implementations of the entity
// repositories. They honor the same uniqueness and atomicity rules as the
// Mongo implementations and back the service and handler tests.
package inmemory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mygymbro/mygymbro/internal/common"
	"github.com/mygymbro/mygymbro/internal/server/models"
)

// UsersRepository is an in-memory users.Repository.
type UsersRepository struct {
	mu    sync.Mutex
	byID  map[string]*models.User
	order []string
}

func NewUsersRepository() *UsersRepository {
	return &UsersRepository{byID: map[string]*models.User{}}
}

func (r *UsersRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, common.ErrDuplicateKey
		}
	}

	user.ID = primitive.NewObjectID()
	if user.DaysAtGym == nil {
		user.DaysAtGym = []models.WorkoutSession{}
	}
	if user.MealDays == nil {
		user.MealDays = []models.MealDay{}
	}
	if user.ProgressPics == nil {
		user.ProgressPics = []string{}
	}

	r.byID[user.ID.Hex()] = user
	r.order = append(r.order, user.ID.Hex())
	return user, nil
}

func (r *UsersRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if r.byID[id].Email == email {
			u := *r.byID[id]
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *UsersRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UsersRepository) UpdateProfile(ctx context.Context, id string, upd *models.ProfileUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}

	if upd.Email != nil {
		for uid, other := range r.byID {
			if uid != id && other.Email == *upd.Email {
				return common.ErrDuplicateKey
			}
		}
		u.Email = *upd.Email
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Age != nil {
		u.Age = *upd.Age
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.Sex != nil {
		u.Sex = *upd.Sex
	}
	if upd.Weight != nil {
		u.Weight = *upd.Weight
	}
	if upd.Height != nil {
		u.Height = *upd.Height
	}
	if upd.BodyFat != nil {
		u.BodyFat = *upd.BodyFat
	}
	return nil
}

func (r *UsersRepository) SetPassword(ctx context.Context, id string, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	u.Password = hash
	return nil
}

func (r *UsersRepository) FinishSession(ctx context.Context, id string, s *models.WorkoutSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	// one indivisible step, like the single-document Mongo update
	u.DaysAtGym = append(u.DaysAtGym, *s)
	u.CurrentWorkout = nil
	return nil
}

func (r *UsersRepository) SetCurrentWorkout(ctx context.Context, id string, w *models.WorkoutSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	u.CurrentWorkout = w
	return nil
}

func (r *UsersRepository) AppendMealDay(ctx context.Context, id string, d models.MealDay) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	u.MealDays = append(u.MealDays, d)
	return nil
}

func (r *UsersRepository) AppendProgressPic(ctx context.Context, id string, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return common.ErrNotFound
	}
	u.ProgressPics = append(u.ProgressPics, key)
	return nil
}

// ExercisesRepository is an in-memory exercises.Repository.
type ExercisesRepository struct {
	mu    sync.Mutex
	byID  map[string]*models.Exercise
	order []string
}

func NewExercisesRepository() *ExercisesRepository {
	return &ExercisesRepository{byID: map[string]*models.Exercise{}}
}

func (r *ExercisesRepository) Create(ctx context.Context, e *models.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.byID {
		if other.Name == e.Name {
			return common.ErrDuplicateKey
		}
	}

	e.ID = primitive.NewObjectID()
	if e.OtherMuscles == nil {
		e.OtherMuscles = []string{}
	}
	r.byID[e.ID.Hex()] = e
	r.order = append(r.order, e.ID.Hex())
	return nil
}

func (r *ExercisesRepository) ListVisible(ctx context.Context, requesterID string) ([]models.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := []models.Exercise{}
	for _, id := range r.order {
		e := r.byID[id]
		if e.Creator == requesterID || e.IsVisible {
			list = append(list, *e)
		}
	}
	return list, nil
}

func (r *ExercisesRepository) FindByID(ctx context.Context, id string) (*models.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *ExercisesRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// MealsRepository is an in-memory meals.Repository.
type MealsRepository struct {
	mu    sync.Mutex
	byID  map[string]*models.Meal
	order []string
}

func NewMealsRepository() *MealsRepository {
	return &MealsRepository{byID: map[string]*models.Meal{}}
}

func (r *MealsRepository) Create(ctx context.Context, m *models.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.byID {
		if other.Name == m.Name {
			return common.ErrDuplicateKey
		}
	}

	m.ID = primitive.NewObjectID()
	r.byID[m.ID.Hex()] = m
	r.order = append(r.order, m.ID.Hex())
	return nil
}

func (r *MealsRepository) ListVisible(ctx context.Context, requesterID string) ([]models.Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := []models.Meal{}
	for _, id := range r.order {
		m := r.byID[id]
		if m.Creator == requesterID || m.IsVisible {
			list = append(list, *m)
		}
	}
	return list, nil
}

func (r *MealsRepository) FindByID(ctx context.Context, id string) (*models.Meal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *MealsRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// UserExercisesRepository is an in-memory userexercises.Repository.
type UserExercisesRepository struct {
	mu    sync.Mutex
	stats map[string]*models.UserExerciseStat
}

func NewUserExercisesRepository() *UserExercisesRepository {
	return &UserExercisesRepository{stats: map[string]*models.UserExerciseStat{}}
}

func statKey(userID, exerciseID string) string {
	return userID + "/" + exerciseID
}

func (r *UserExercisesRepository) Find(ctx context.Context, userID, exerciseID string) (*models.UserExerciseStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stats[statKey(userID, exerciseID)]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *UserExercisesRepository) AppendSets(ctx context.Context, userID, exerciseID string,
	weights []float64, reps []int, dates []string,
	seedRecord float64, seedDate string) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	key := statKey(userID, exerciseID)
	s, ok := r.stats[key]
	if !ok {
		s = &models.UserExerciseStat{
			ID:                 primitive.NewObjectID(),
			UserID:             userID,
			ExerciseID:         exerciseID,
			PersonalRecord:     seedRecord,
			PersonalRecordDate: seedDate,
		}
		r.stats[key] = s
	}

	s.PastSetWeight = append(s.PastSetWeight, weights...)
	s.PastSetReps = append(s.PastSetReps, reps...)
	s.PastDates = append(s.PastDates, dates...)
	return nil
}

func (r *UserExercisesRepository) RaiseRecord(ctx context.Context, userID, exerciseID string, weight float64, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.stats[statKey(userID, exerciseID)]
	if !ok {
		return nil
	}
	if s.PersonalRecord < weight {
		s.PersonalRecord = weight
		s.PersonalRecordDate = date
	}
	return nil
}

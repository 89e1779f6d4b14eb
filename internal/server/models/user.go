// Package models defines the document shapes persisted in the four Mongo
// collections: users, exercises, meals and userexercises.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the account document. daysAtGym is append-only: a session is
// pushed once on completion and never mutated afterwards. currentWorkout
// holds at most one in-progress snapshot and is cleared when a session
// finishes.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	Name         string             `bson:"name" json:"name"`
	Age          int                `bson:"age" json:"age"`
	Bio          string             `bson:"bio" json:"bio"`
	Sex          string             `bson:"sex" json:"sex"`
	Weight       float64            `bson:"weight" json:"weight"`
	Height       float64            `bson:"height" json:"height"`
	BodyFat      float64            `bson:"bodyFat" json:"bodyFat"`
	DaysAtGym    []WorkoutSession   `bson:"daysAtGym" json:"daysAtGym"`
	ProgressPics []string           `bson:"progressPics" json:"progressPics"`
	// nil means no workout is in progress.
	CurrentWorkout *WorkoutSession `bson:"currentWorkout" json:"currentWorkout"`
	MealDays       []MealDay       `bson:"mealDays" json:"mealDays"`
	DateCreated    time.Time       `bson:"dateCreated" json:"dateCreated"`
}

// ProfileUpdate carries the mutable profile attributes for a partial update.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Name    *string  `json:"name"`
	Age     *int     `json:"age"`
	Bio     *string  `json:"bio"`
	Sex     *string  `json:"sex"`
	Weight  *float64 `json:"weight"`
	Height  *float64 `json:"height"`
	BodyFat *float64 `json:"bodyFat"`
	Email   *string  `json:"email"`
}

// WorkoutSession is one element of daysAtGym, and doubles as the
// currentWorkout snapshot (duration stays zero until the session is
// finished).
type WorkoutSession struct {
	Name     string         `bson:"name" json:"name"`
	Notes    string         `bson:"notes" json:"notes"`
	Duration int            `bson:"duration" json:"duration"`
	Date     string         `bson:"date" json:"date"`
	Entries  []WorkoutEntry `bson:"entries" json:"entries"`
}

// WorkoutEntry is the per-exercise result of a session. Sets, Weight and
// Dates are parallel arrays: index i across all three describes one set.
type WorkoutEntry struct {
	ExerciseID string    `bson:"id" json:"id"`
	Sets       []int     `bson:"sets" json:"sets"`
	Weight     []float64 `bson:"weight" json:"weight"`
	Dates      []string  `bson:"date" json:"date"`
}

// MealDay is one element of mealDays: the meals logged for a single day.
type MealDay struct {
	Date          string   `bson:"date" json:"date"`
	Meals         []string `bson:"meals" json:"meals"`
	TotalCalories float64  `bson:"totalCalories" json:"totalCalories"`
}

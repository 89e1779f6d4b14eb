// Package validation holds the explicit request validators. Each validator
// checks every field and returns a *common.ValidationError aggregating all
// failures, never just the first one.
package validation

import (
	"net/mail"

	"github.com/mygymbro/mygymbro/internal/common"
	"github.com/mygymbro/mygymbro/internal/server/models"
)

const (
	MinPasswordLength = 6
	MaxBioLength      = 256
)

const (
	msgUsernameRequired   = "Please enter a username"
	msgEmailRequired      = "Please enter an email"
	msgEmailInvalid       = "Please enter a valid email"
	msgPasswordRequired   = "Please enter a password"
	msgPasswordTooShort   = "Minimum password length is 6 characters"
	msgNameRequired       = "Please enter a name"
	msgPrimaryMuscle      = "Please select a primary muscle"
	msgEquipment          = "Please select an equipment type"
	msgCaloriesRequired   = "Please enter the calories"
	msgBioTooLong         = "Bio cannot be longer than 256 characters"
	msgAgeNegative        = "Age cannot be negative"
	msgWeightNegative     = "Weight cannot be negative"
	msgHeightNegative     = "Height cannot be negative"
	msgBodyFatNegative    = "Body fat cannot be negative"
	msgSetArraysMisshaped = "Sets, weights and dates must have the same length"
)

func validEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// NewUser validates a signup payload.
func NewUser(username, email, password string) error {
	ve := &common.ValidationError{}

	if username == "" {
		ve.Add(msgUsernameRequired)
	}
	if email == "" {
		ve.Add(msgEmailRequired)
	} else if !validEmail(email) {
		ve.Add(msgEmailInvalid)
	}
	if password == "" {
		ve.Add(msgPasswordRequired)
	} else if len(password) < MinPasswordLength {
		ve.Add(msgPasswordTooShort)
	}

	if ve.Empty() {
		return nil
	}
	return ve
}

// Password validates a new password on its own (change_password flow).
func Password(password string) error {
	ve := &common.ValidationError{}

	if password == "" {
		ve.Add(msgPasswordRequired)
	} else if len(password) < MinPasswordLength {
		ve.Add(msgPasswordTooShort)
	}

	if ve.Empty() {
		return nil
	}
	return ve
}

// ProfileUpdate re-runs the field constraints on a partial profile update.
func ProfileUpdate(upd *models.ProfileUpdate) error {
	ve := &common.ValidationError{}

	if upd.Email != nil && !validEmail(*upd.Email) {
		ve.Add(msgEmailInvalid)
	}
	if upd.Bio != nil && len(*upd.Bio) > MaxBioLength {
		ve.Add(msgBioTooLong)
	}
	if upd.Age != nil && *upd.Age < 0 {
		ve.Add(msgAgeNegative)
	}
	if upd.Weight != nil && *upd.Weight < 0 {
		ve.Add(msgWeightNegative)
	}
	if upd.Height != nil && *upd.Height < 0 {
		ve.Add(msgHeightNegative)
	}
	if upd.BodyFat != nil && *upd.BodyFat < 0 {
		ve.Add(msgBodyFatNegative)
	}

	if ve.Empty() {
		return nil
	}
	return ve
}

// NewExercise validates a create_exercise payload.
func NewExercise(e *models.Exercise) error {
	ve := &common.ValidationError{}

	if e.Name == "" {
		ve.Add(msgNameRequired)
	}
	if e.PrimaryMuscle == "" {
		ve.Add(msgPrimaryMuscle)
	}
	if e.Equipment == "" {
		ve.Add(msgEquipment)
	}

	if ve.Empty() {
		return nil
	}
	return ve
}

// NewMeal validates a create_meal payload.
func NewMeal(m *models.Meal) error {
	ve := &common.ValidationError{}

	if m.Name == "" {
		ve.Add(msgNameRequired)
	}
	if m.Calories <= 0 {
		ve.Add(msgCaloriesRequired)
	}

	if ve.Empty() {
		return nil
	}
	return ve
}

// SessionEntries checks that every entry's sets, weights and dates arrays
// are equal length and non-empty (one triple per set performed).
func SessionEntries(entries []models.WorkoutEntry) error {
	ve := &common.ValidationError{}

	for _, e := range entries {
		n := len(e.Weight)
		if n == 0 || len(e.Sets) != n || len(e.Dates) != n {
			ve.Add(msgSetArraysMisshaped)
			break
		}
	}

	if ve.Empty() {
		return nil
	}
	return ve
}

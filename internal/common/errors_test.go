package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_JoinsWithPeriods(t *testing.T) {
	t.Parallel()

	ve := &ValidationError{}
	ve.Add("Please enter a username")
	ve.Add("Please enter an email")

	assert.Equal(t, "Please enter a username. Please enter an email. ", ve.Error())
	assert.False(t, ve.Empty())
}

func TestValidationError_Empty(t *testing.T) {
	t.Parallel()

	ve := &ValidationError{}
	if !ve.Empty() {
		t.Fatalf("expected new ValidationError to be empty")
	}
}

func TestAuthenticationError_MatchableWithAs(t *testing.T) {
	t.Parallel()

	var err error = &AuthenticationError{Reason: "password is incorrect"}

	var ae *AuthenticationError
	if !errors.As(err, &ae) {
		t.Fatalf("errors.As failed to match AuthenticationError")
	}
	assert.Equal(t, "password is incorrect", ae.Error())
}

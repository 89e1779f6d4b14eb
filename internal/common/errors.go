// Package common defines shared sentinel and typed errors used across the
// service and HTTP layers. Callers should use errors.Is / errors.As to
// match these values.
package common

import (
	"errors"
	"strings"
)

var (
	// Repository-level errors.
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")

	// Service-level errors.
	ErrInternal      = errors.New("internal error")
	ErrNotAuthorized = errors.New("not authorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken     = errors.New("invalid token")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// ValidationError aggregates every failing field of a request into a single
// human-readable message. Each entry is one sentence without a trailing
// period; Error joins them the way the clients expect: "msg. msg. ".
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	for _, m := range e.Messages {
		b.WriteString(m)
		b.WriteString(". ")
	}
	return b.String()
}

// Add appends one field failure. A nil receiver-safe helper is deliberately
// not provided; construct with &ValidationError{} and check Empty().
func (e *ValidationError) Add(msg string) {
	e.Messages = append(e.Messages, msg)
}

// Empty reports whether no field failed.
func (e *ValidationError) Empty() bool {
	return len(e.Messages) == 0
}

// AuthenticationError carries the exact login failure reason. The reason is
// kept in the error so logs can distinguish a missing account from a wrong
// password even though both answer the same HTTP status.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return e.Reason
}

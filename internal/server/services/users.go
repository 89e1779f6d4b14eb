// Package services holds the business logic between the HTTP handlers and
// the repositories.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mygymbro/mygymbro/internal/common"
	"github.com/mygymbro/mygymbro/internal/server/auth"
	"github.com/mygymbro/mygymbro/internal/server/config"
	"github.com/mygymbro/mygymbro/internal/server/models"
	"github.com/mygymbro/mygymbro/internal/server/repositories/users"
	"github.com/mygymbro/mygymbro/internal/server/validation"
)

type UserService struct {
	repo          users.Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register validates the signup payload, hashes the password and creates the
// account. On success it mints a session token so the client is logged in
// immediately.
func (s *UserService) Register(ctx context.Context, username, email, password string) (string, string, error) {

	if err := validation.NewUser(username, email, password); err != nil {
		return "", "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateKey) {
			return "", "", err
		}
		return "", "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID.Hex(), s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", "", fmt.Errorf("error generating token: %w", err)
	}

	return user.ID.Hex(), token, nil
}

// Login checks the credentials and mints a session token. The two failure
// reasons stay distinct inside the AuthenticationError.
func (s *UserService) Login(ctx context.Context, email, password string) (string, string, error) {

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", "", &common.AuthenticationError{Reason: "email doesn't exist"}
		}
		return "", "", common.ErrInternal
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", "", &common.AuthenticationError{Reason: "password is incorrect"}
	}

	token, err := auth.GenerateToken(user.ID.Hex(), s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", "", common.ErrInternal
	}

	return user.ID.Hex(), token, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile re-runs the field validators and applies a partial update of
// the mutable profile attributes.
func (s *UserService) UpdateProfile(ctx context.Context, id string, upd *models.ProfileUpdate) error {
	if err := validation.ProfileUpdate(upd); err != nil {
		return err
	}
	return s.repo.UpdateProfile(ctx, id, upd)
}

// ChangePassword verifies the current password before hashing and storing
// the new one.
func (s *UserService) ChangePassword(ctx context.Context, id, current, newPassword string) error {

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, current) {
		return &common.AuthenticationError{Reason: "password is incorrect"}
	}

	if err := validation.Password(newPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return s.repo.SetPassword(ctx, id, hash)
}

// VerifyToken resolves a session token back to the user id it binds.
func (s *UserService) VerifyToken(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

package exercises

import (
	"context"

	"github.com/mygymbro/mygymbro/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.Exercise) error

	// ListVisible returns entries created by requesterID plus everyone's
	// public ones.
	ListVisible(ctx context.Context, requesterID string) ([]models.Exercise, error)

	FindByID(ctx context.Context, id string) (*models.Exercise, error)
	Delete(ctx context.Context, id string) error
}

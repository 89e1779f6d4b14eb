package meals

import (
	"context"

	"github.com/mygymbro/mygymbro/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, m *models.Meal) error
	ListVisible(ctx context.Context, requesterID string) ([]models.Meal, error)
	FindByID(ctx context.Context, id string) (*models.Meal, error)
	Delete(ctx context.Context, id string) error
}

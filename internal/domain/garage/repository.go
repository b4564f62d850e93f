package garage

import (
	"context"

	"github.com/BruksfildServices01/garage-booking/internal/httperr"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

var ErrGarageNotFound = httperr.ErrNotFound("garage_not_found", "Garage not found")

type Repository interface {
	ListGarages(ctx context.Context) ([]models.Garage, error)
	GetGarage(ctx context.Context, id uint) (*models.Garage, error)
}

// Cache is a read-through store for garage lookups. Misses and backend
// failures both report ok=false.
type Cache interface {
	GetList(ctx context.Context) ([]models.Garage, bool)
	SetList(ctx context.Context, garages []models.Garage)
	Get(ctx context.Context, id uint) (*models.Garage, bool)
	Set(ctx context.Context, g *models.Garage)
	Invalidate(ctx context.Context)
}

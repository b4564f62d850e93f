package identity

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/garage-booking/internal/httperr"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

var (
	ErrEmailTaken         = httperr.ErrConflict("email_already_registered", "Email is already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Repository interface {
	// CreateOwner inserts the user and its garage in one transaction and
	// sets garage.OwnerID. A duplicate email yields ErrEmailTaken.
	CreateOwner(ctx context.Context, user *models.User, garage *models.Garage) error

	// CreateCustomer inserts the user and its profile in one transaction;
	// the profile takes the user's id.
	CreateCustomer(ctx context.Context, user *models.User, profile *models.CustomerProfile) error

	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// GarageByOwner and ProfileByUser return nil, nil when no row exists.
	GarageByOwner(ctx context.Context, ownerID uint) (*models.Garage, error)
	ProfileByUser(ctx context.Context, userID uint) (*models.CustomerProfile, error)

	// SearchGarages matches a case-insensitive substring of the garage name.
	SearchGarages(ctx context.Context, namePart string) ([]models.Garage, error)
}

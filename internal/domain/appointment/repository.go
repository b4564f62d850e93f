package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/garage-booking/internal/httperr"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

var (
	ErrGarageNotFound      = httperr.ErrNotFound("garage_not_found", "Garage not found")
	ErrCustomerNotFound    = httperr.ErrNotFound("customer_not_found", "Customer not found")
	ErrAppointmentNotFound = httperr.ErrNotFound("appointment_not_found", "Appointment not found")
)

type Repository interface {
	// Transaction runs fn against a repository bound to one store
	// transaction. Returning an error rolls it back.
	Transaction(ctx context.Context, fn func(repo Repository) error) error

	// -------- References --------
	GetGarage(ctx context.Context, id uint) (*models.Garage, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)

	// -------- Appointment --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	// GetAppointment loads the appointment with its garage, garage owner,
	// customer and customer profile.
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	UpdateStatus(ctx context.Context, id uint, status Status) error

	MarkNotified(ctx context.Context, id uint, kind string, at time.Time) error

	// ListAppointments orders by appointment date then time slot, both
	// ascending. A nil status lists everything.
	ListAppointments(ctx context.Context, status *Status) ([]models.Appointment, error)
}

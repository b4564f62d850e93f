package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/garage-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute lists appointments by date and time slot. A nil status means all.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	status *domain.Status,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx, status)
}

package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/garage-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	GarageID        uint
	CustomerID      uint
	ServiceType     string
	TimeSlot        string
	AppointmentDate string
	Notes           string
	ContactPhone    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	events *Events
}

func NewCreateAppointment(repo domain.Repository, events *Events) *CreateAppointment {
	return &CreateAppointment{repo: repo, events: events}
}

// Execute books a PENDING appointment and returns it with its garage,
// customer and profile loaded.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	date, err := domain.ParseDate(in.AppointmentDate)
	if err != nil {
		return nil, err
	}

	ap := domain.New(domain.NewAppointment{
		GarageID:     in.GarageID,
		CustomerID:   in.CustomerID,
		ServiceType:  strings.TrimSpace(in.ServiceType),
		TimeSlot:     strings.TrimSpace(in.TimeSlot),
		Date:         date,
		Notes:        in.Notes,
		ContactPhone: strings.TrimSpace(in.ContactPhone),
	})

	// --------------------------------------------------
	// References + insert in one transaction
	// --------------------------------------------------
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.GetGarage(ctx, in.GarageID); err != nil {
			return err
		}
		if _, err := tx.GetUser(ctx, in.CustomerID); err != nil {
			return err
		}
		return tx.CreateAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	saved, err := uc.repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	uc.events.created(ctx, saved)
	return saved, nil
}

package mq

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/garage-booking/internal/models"
)

type AppointmentEvent struct {
	EventID         string    `json:"eventId"`
	OccurredAt      time.Time `json:"occurredAt"`
	AppointmentID   uint      `json:"appointmentId"`
	GarageID        uint      `json:"garageId"`
	CustomerID      uint      `json:"customerId"`
	Status          string    `json:"status"`
	PreviousStatus  string    `json:"previousStatus,omitempty"`
	AppointmentDate string    `json:"appointmentDate"`
	TimeSlot        string    `json:"timeSlot"`
	Notified        bool      `json:"notified"`
}

func NewAppointmentEvent(ap *models.Appointment, previous string, notified bool, at time.Time) AppointmentEvent {
	return AppointmentEvent{
		EventID:         uuid.NewString(),
		OccurredAt:      at.UTC(),
		AppointmentID:   ap.ID,
		GarageID:        ap.GarageID,
		CustomerID:      ap.CustomerID,
		Status:          ap.Status,
		PreviousStatus:  previous,
		AppointmentDate: ap.AppointmentDate.String(),
		TimeSlot:        ap.TimeSlot,
		Notified:        notified,
	}
}

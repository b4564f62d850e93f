package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/garage-booking/internal/httperr"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

var ErrInvalidDate = httperr.ErrValidation(
	"invalid_appointment_date",
	"Invalid appointmentDate. Use ISO format (yyyy-MM-dd).",
)

// ParseDate reads a yyyy-MM-dd calendar date.
func ParseDate(s string) (models.Date, error) {
	d, err := models.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return models.Date{}, ErrInvalidDate
	}
	return d, nil
}

type NewAppointment struct {
	GarageID     uint
	CustomerID   uint
	ServiceType  string
	TimeSlot     string
	Date         models.Date
	Notes        string
	ContactPhone string
}

func New(in NewAppointment) *models.Appointment {
	return &models.Appointment{
		GarageID:        in.GarageID,
		CustomerID:      in.CustomerID,
		ServiceType:     in.ServiceType,
		TimeSlot:        in.TimeSlot,
		AppointmentDate: in.Date,
		Notes:           in.Notes,
		ContactPhone:    in.ContactPhone,
		Status:          string(InitialStatus()),
	}
}

// ChangeStatus applies a free-form transition. Every known status is
// reachable from every other one.
func ChangeStatus(ap *models.Appointment, to Status) error {
	if !to.Valid() {
		return ErrUnsupportedStatus
	}
	ap.Status = string(to)
	return nil
}

// MarkNotified stamps both notification fields together.
func MarkNotified(ap *models.Appointment, kind string, at time.Time) {
	at = at.UTC()
	ap.LastNotificationSentAt = &at
	ap.LastNotificationType = kind
}

// CustomerEmail returns the address confirmations go to, if known.
func CustomerEmail(ap *models.Appointment) string {
	if ap.Customer == nil {
		return ""
	}
	return ap.Customer.Email
}

package dto

import (
	"time"

	"github.com/BruksfildServices01/garage-booking/internal/models"
)

type AppointmentCustomerDTO struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	VehicleNumber string `json:"vehicleNumber"`
}

type AppointmentGarageDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	OwnerName string `json:"ownerName"`
}

type NotificationDTO struct {
	LastSentAt time.Time `json:"lastSentAt"`
	Type       string    `json:"type"`
}

type AppointmentDTO struct {
	ID              uint                   `json:"id"`
	ServiceType     string                 `json:"serviceType"`
	TimeSlot        string                 `json:"timeSlot"`
	AppointmentDate models.Date            `json:"appointmentDate"`
	Status          string                 `json:"status"`
	Notes           string                 `json:"notes"`
	Customer        AppointmentCustomerDTO `json:"customer"`
	Garage          AppointmentGarageDTO   `json:"garage"`
	Notification    *NotificationDTO       `json:"notification"`
}

type UpdateStatusDTO struct {
	Appointment      AppointmentDTO `json:"appointment"`
	NotificationSent bool           `json:"notificationSent"`
}

// FromAppointment expects Garage, Garage.Owner, Customer and CustomerProfile
// to be loaded; missing ones leave their fields empty.
func FromAppointment(ap *models.Appointment) AppointmentDTO {
	out := AppointmentDTO{
		ID:              ap.ID,
		ServiceType:     ap.ServiceType,
		TimeSlot:        ap.TimeSlot,
		AppointmentDate: ap.AppointmentDate,
		Status:          ap.Status,
		Notes:           ap.Notes,
	}

	out.Customer = AppointmentCustomerDTO{ID: ap.CustomerID, Phone: ap.ContactPhone}
	if ap.Customer != nil {
		out.Customer.Name = ap.Customer.Name
		out.Customer.Email = ap.Customer.Email
	}
	if p := ap.CustomerProfile; p != nil {
		out.Customer.VehicleNumber = p.VehicleNumber
		if out.Customer.Phone == "" {
			out.Customer.Phone = p.Phone
		}
	}

	out.Garage = AppointmentGarageDTO{ID: ap.GarageID}
	if g := ap.Garage; g != nil {
		out.Garage.Name = g.GarageName
		out.Garage.Address = g.GarageAddress
		if g.Owner != nil {
			out.Garage.OwnerName = g.Owner.Name
		}
	}

	if ap.LastNotificationSentAt != nil {
		out.Notification = &NotificationDTO{
			LastSentAt: ap.LastNotificationSentAt.UTC(),
			Type:       ap.LastNotificationType,
		}
	}
	return out
}

func FromAppointments(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, FromAppointment(&aps[i]))
	}
	return out
}

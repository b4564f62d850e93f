package models

import "time"

const NotificationConfirmedEmail = "CONFIRMED_EMAIL"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GarageID uint    `gorm:"not null;index" json:"garageId"`
	Garage   *Garage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CustomerID uint  `gorm:"not null;index" json:"customerId"`
	Customer   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Loaded on demand from customer_profiles by CustomerID.
	CustomerProfile *CustomerProfile `gorm:"-" json:"-"`

	AppointmentDate Date   `gorm:"type:date;not null;index:idx_appointments_schedule,priority:1" json:"appointmentDate"`
	TimeSlot        string `gorm:"size:20;not null;index:idx_appointments_schedule,priority:2" json:"timeSlot"`
	ServiceType     string `gorm:"size:100;not null" json:"serviceType"`
	Notes           string `gorm:"size:1000" json:"notes"`
	ContactPhone    string `gorm:"size:20" json:"contactPhone"`

	Status string `gorm:"size:20;not null;default:'PENDING';index" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	LastNotificationSentAt *time.Time `json:"lastNotificationSentAt"`
	LastNotificationType   string     `gorm:"size:30" json:"lastNotificationType"`
}

// Notified reports whether a notification has ever been stamped.
func (a *Appointment) Notified() bool {
	return a.LastNotificationSentAt != nil
}

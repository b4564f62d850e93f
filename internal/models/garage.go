package models

import "time"

// Garage belongs to exactly one GARAGE_OWNER user. The owner side holds no
// reference back; look the garage up by OwnerID instead.
type Garage struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	GarageName    string `gorm:"size:150;not null;index" json:"garageName"`
	GarageAddress string `gorm:"size:255" json:"garageAddress"`
	LicenseNumber string `gorm:"size:100" json:"licenseNumber"`

	OwnerID uint  `gorm:"uniqueIndex;not null" json:"ownerId"`
	Owner   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

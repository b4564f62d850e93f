package models

// CustomerProfile shares its primary key with the owning user.
type CustomerProfile struct {
	ID uint `gorm:"primaryKey;autoIncrement:false" json:"-"`

	VehicleNumber string `gorm:"size:50" json:"vehicleNumber"`
	Phone         string `gorm:"size:20" json:"phone"`
}

package dto

import "github.com/BruksfildServices01/garage-booking/internal/models"

type GarageDTO struct {
	ID            uint   `json:"id"`
	GarageName    string `json:"garageName"`
	GarageAddress string `json:"garageAddress"`
	LicenseNumber string `json:"licenseNumber"`
	OwnerID       uint   `json:"ownerId"`
}

func FromGarage(g *models.Garage) GarageDTO {
	return GarageDTO{
		ID:            g.ID,
		GarageName:    g.GarageName,
		GarageAddress: g.GarageAddress,
		LicenseNumber: g.LicenseNumber,
		OwnerID:       g.OwnerID,
	}
}

func FromGarages(gs []models.Garage) []GarageDTO {
	out := make([]GarageDTO, 0, len(gs))
	for i := range gs {
		out = append(out, FromGarage(&gs[i]))
	}
	return out
}

package dto

import (
	"github.com/BruksfildServices01/garage-booking/internal/domain/identity"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

type CustomerProfileDTO struct {
	VehicleNumber string `json:"vehicleNumber"`
	Phone         string `json:"phone"`
}

type UserGarageDTO struct {
	ID            uint   `json:"id"`
	GarageName    string `json:"garageName"`
	GarageAddress string `json:"garageAddress"`
}

// UserDTO never carries the password hash.
type UserDTO struct {
	ID              uint                `json:"id"`
	Name            string              `json:"name"`
	Email           string              `json:"email"`
	Role            models.Role         `json:"role"`
	CustomerProfile *CustomerProfileDTO `json:"customerProfile,omitempty"`
	Garage          *UserGarageDTO      `json:"garage,omitempty"`
}

type AuthDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type MessageDTO struct {
	Message string `json:"message"`
}

func FromAccount(acc identity.Account) UserDTO {
	out := UserDTO{
		ID:    acc.User.ID,
		Name:  acc.User.Name,
		Email: acc.User.Email,
		Role:  acc.User.Role,
	}

	switch k := acc.Kind.(type) {
	case identity.OwnerKind:
		out.Garage = &UserGarageDTO{
			ID:            k.Garage.ID,
			GarageName:    k.Garage.GarageName,
			GarageAddress: k.Garage.GarageAddress,
		}
	case identity.CustomerKind:
		out.CustomerProfile = &CustomerProfileDTO{
			VehicleNumber: k.Profile.VehicleNumber,
			Phone:         k.Profile.Phone,
		}
	}
	return out
}

// Package identity describes registered users and the role-specific data
// attached to them.
package identity

import "github.com/BruksfildServices01/garage-booking/internal/models"

// Kind is either OwnerKind or CustomerKind.
type Kind interface {
	Role() models.Role
	isKind()
}

type OwnerKind struct {
	Garage models.Garage
}

func (OwnerKind) Role() models.Role { return models.RoleGarageOwner }
func (OwnerKind) isKind()           {}

type CustomerKind struct {
	Profile models.CustomerProfile
}

func (CustomerKind) Role() models.Role { return models.RoleCustomer }
func (CustomerKind) isKind()           {}

// Account is a user together with the data its role carries. Kind is nil
// when the role-specific row is missing.
type Account struct {
	User models.User
	Kind Kind
}

func (a Account) Garage() (models.Garage, bool) {
	k, ok := a.Kind.(OwnerKind)
	return k.Garage, ok
}

func (a Account) Profile() (models.CustomerProfile, bool) {
	k, ok := a.Kind.(CustomerKind)
	return k.Profile, ok
}

package identity

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/garage-booking/internal/auth"
	"github.com/BruksfildServices01/garage-booking/internal/domain/garage"
	domain "github.com/BruksfildServices01/garage-booking/internal/domain/identity"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

type UserInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterGarageOwnerInput struct {
	User          UserInput
	GarageName    string
	GarageAddress string
	LicenseNumber string
}

type RegisterCustomerInput struct {
	User          UserInput
	VehicleNumber string
	Phone         string
}

// ======================================================
// GARAGE OWNER
// ======================================================

type RegisterGarageOwner struct {
	repo   domain.Repository
	hasher auth.Hasher
	tokens TokenIssuer
	cache  garage.Cache
}

func NewRegisterGarageOwner(
	repo domain.Repository,
	hasher auth.Hasher,
	tokens TokenIssuer,
	cache garage.Cache,
) *RegisterGarageOwner {
	return &RegisterGarageOwner{repo: repo, hasher: hasher, tokens: tokens, cache: cache}
}

func (uc *RegisterGarageOwner) Execute(ctx context.Context, in RegisterGarageOwnerInput) (*AuthResult, error) {
	user, err := newUser(uc.hasher, in.User, models.RoleGarageOwner)
	if err != nil {
		return nil, err
	}

	g := &models.Garage{
		GarageName:    strings.TrimSpace(in.GarageName),
		GarageAddress: strings.TrimSpace(in.GarageAddress),
		LicenseNumber: strings.TrimSpace(in.LicenseNumber),
	}

	if err := uc.repo.CreateOwner(ctx, user, g); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(ctx)

	token, err := uc.tokens.Issue(user.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:   token,
		Account: domain.Account{User: *user, Kind: domain.OwnerKind{Garage: *g}},
	}, nil
}

// ======================================================
// CUSTOMER
// ======================================================

type RegisterCustomer struct {
	repo   domain.Repository
	hasher auth.Hasher
	tokens TokenIssuer
}

func NewRegisterCustomer(repo domain.Repository, hasher auth.Hasher, tokens TokenIssuer) *RegisterCustomer {
	return &RegisterCustomer{repo: repo, hasher: hasher, tokens: tokens}
}

func (uc *RegisterCustomer) Execute(ctx context.Context, in RegisterCustomerInput) (*AuthResult, error) {
	user, err := newUser(uc.hasher, in.User, models.RoleCustomer)
	if err != nil {
		return nil, err
	}

	profile := &models.CustomerProfile{
		VehicleNumber: strings.TrimSpace(in.VehicleNumber),
		Phone:         strings.TrimSpace(in.Phone),
	}

	if err := uc.repo.CreateCustomer(ctx, user, profile); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(user.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:   token,
		Account: domain.Account{User: *user, Kind: domain.CustomerKind{Profile: *profile}},
	}, nil
}

func newUser(hasher auth.Hasher, in UserInput, role models.Role) (*models.User, error) {
	hash, err := hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	return &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		Role:         role,
	}, nil
}

package identity

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/garage-booking/internal/domain/identity"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

// AuthResult is returned by registration and login.
type AuthResult struct {
	Token   string
	Account domain.Account
}

type TokenIssuer interface {
	Issue(email string) (string, error)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// loadAccount attaches the role-specific row to user. A missing row leaves
// Kind nil.
func loadAccount(ctx context.Context, repo domain.Repository, user *models.User) (domain.Account, error) {
	acc := domain.Account{User: *user}

	switch user.Role {
	case models.RoleGarageOwner:
		g, err := repo.GarageByOwner(ctx, user.ID)
		if err != nil {
			return acc, err
		}
		if g != nil {
			acc.Kind = domain.OwnerKind{Garage: *g}
		}
	case models.RoleCustomer:
		p, err := repo.ProfileByUser(ctx, user.ID)
		if err != nil {
			return acc, err
		}
		if p != nil {
			acc.Kind = domain.CustomerKind{Profile: *p}
		}
	}
	return acc, nil
}

package identity

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/garage-booking/internal/auth"
	domain "github.com/BruksfildServices01/garage-booking/internal/domain/identity"
)

type Login struct {
	repo   domain.Repository
	hasher auth.Hasher
	tokens TokenIssuer
}

func NewLogin(repo domain.Repository, hasher auth.Hasher, tokens TokenIssuer) *Login {
	return &Login{repo: repo, hasher: hasher, tokens: tokens}
}

// Execute returns ErrInvalidCredentials for an unknown email and for a wrong
// password alike.
func (uc *Login) Execute(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := uc.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	acc, err := loadAccount(ctx, uc.repo, user)
	if err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Account: acc}, nil
}

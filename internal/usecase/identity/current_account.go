package identity

import (
	"context"

	domain "github.com/BruksfildServices01/garage-booking/internal/domain/identity"
)

// CurrentAccount resolves the account behind an authenticated email.
type CurrentAccount struct {
	repo domain.Repository
}

func NewCurrentAccount(repo domain.Repository) *CurrentAccount {
	return &CurrentAccount{repo: repo}
}

func (uc *CurrentAccount) Execute(ctx context.Context, email string) (domain.Account, error) {
	user, err := uc.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return domain.Account{}, err
	}
	return loadAccount(ctx, uc.repo, user)
}

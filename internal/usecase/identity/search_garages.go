package identity

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/garage-booking/internal/domain/identity"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

type SearchGarages struct {
	repo domain.Repository
}

func NewSearchGarages(repo domain.Repository) *SearchGarages {
	return &SearchGarages{repo: repo}
}

func (uc *SearchGarages) Execute(ctx context.Context, namePart string) ([]models.Garage, error) {
	return uc.repo.SearchGarages(ctx, strings.TrimSpace(namePart))
}

package garage

import (
	"context"

	domain "github.com/BruksfildServices01/garage-booking/internal/domain/garage"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

type ListGarages struct {
	repo  domain.Repository
	cache domain.Cache
}

func NewListGarages(repo domain.Repository, cache domain.Cache) *ListGarages {
	return &ListGarages{repo: repo, cache: cache}
}

func (uc *ListGarages) Execute(ctx context.Context) ([]models.Garage, error) {
	if garages, ok := uc.cache.GetList(ctx); ok {
		return garages, nil
	}

	garages, err := uc.repo.ListGarages(ctx)
	if err != nil {
		return nil, err
	}
	uc.cache.SetList(ctx, garages)
	return garages, nil
}

type GetGarage struct {
	repo  domain.Repository
	cache domain.Cache
}

func NewGetGarage(repo domain.Repository, cache domain.Cache) *GetGarage {
	return &GetGarage{repo: repo, cache: cache}
}

func (uc *GetGarage) Execute(ctx context.Context, id uint) (*models.Garage, error) {
	if g, ok := uc.cache.Get(ctx, id); ok {
		return g, nil
	}

	g, err := uc.repo.GetGarage(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.cache.Set(ctx, g)
	return g, nil
}

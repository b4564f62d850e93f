package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/garage-booking/internal/domain/garage"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

type GarageGormRepository struct {
	db *gorm.DB
}

func NewGarageGormRepository(db *gorm.DB) *GarageGormRepository {
	return &GarageGormRepository{db: db}
}

func (r *GarageGormRepository) ListGarages(ctx context.Context) ([]models.Garage, error) {
	var garages []models.Garage
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&garages).Error; err != nil {
		return nil, fmt.Errorf("list garages: %w", err)
	}
	return garages, nil
}

func (r *GarageGormRepository) GetGarage(ctx context.Context, id uint) (*models.Garage, error) {
	var g models.Garage
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		if isNotFound(err) {
			return nil, garage.ErrGarageNotFound
		}
		return nil, fmt.Errorf("get garage %d: %w", id, err)
	}
	return &g, nil
}

var _ garage.Repository = (*GarageGormRepository)(nil)

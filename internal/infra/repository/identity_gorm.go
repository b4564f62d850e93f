package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/garage-booking/internal/domain/identity"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

type IdentityGormRepository struct {
	db *gorm.DB
}

func NewIdentityGormRepository(db *gorm.DB) *IdentityGormRepository {
	return &IdentityGormRepository{db: db}
}

func (r *IdentityGormRepository) CreateOwner(
	ctx context.Context,
	user *models.User,
	garage *models.Garage,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createUser(tx, user); err != nil {
			return err
		}

		garage.OwnerID = user.ID
		if err := tx.Omit(clause.Associations).Create(garage).Error; err != nil {
			return fmt.Errorf("create garage: %w", err)
		}
		return nil
	})
}

func (r *IdentityGormRepository) CreateCustomer(
	ctx context.Context,
	user *models.User,
	profile *models.CustomerProfile,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createUser(tx, user); err != nil {
			return err
		}

		profile.ID = user.ID
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("create customer profile: %w", err)
		}
		return nil
	})
}

func createUser(tx *gorm.DB, user *models.User) error {
	if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return identity.ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *IdentityGormRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if isNotFound(err) {
			return nil, identity.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *IdentityGormRepository) GarageByOwner(ctx context.Context, ownerID uint) (*models.Garage, error) {
	var g models.Garage
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&g).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("garage by owner %d: %w", ownerID, err)
	}
	return &g, nil
}

func (r *IdentityGormRepository) ProfileByUser(ctx context.Context, userID uint) (*models.CustomerProfile, error) {
	var p models.CustomerProfile
	if err := r.db.WithContext(ctx).First(&p, userID).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("profile by user %d: %w", userID, err)
	}
	return &p, nil
}

func (r *IdentityGormRepository) SearchGarages(ctx context.Context, namePart string) ([]models.Garage, error) {
	var garages []models.Garage
	if err := r.db.WithContext(ctx).
		Where(`LOWER(garage_name) LIKE ? ESCAPE '\'`, likeContains(namePart)).
		Order("id ASC").
		Find(&garages).Error; err != nil {
		return nil, fmt.Errorf("search garages: %w", err)
	}
	return garages, nil
}

var _ identity.Repository = (*IdentityGormRepository)(nil)

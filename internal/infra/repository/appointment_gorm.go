package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/garage-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(repo domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *AppointmentGormRepository) GetGarage(ctx context.Context, id uint) (*models.Garage, error) {
	var g models.Garage
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		if isNotFound(err) {
			return nil, domain.ErrGarageNotFound
		}
		return nil, fmt.Errorf("get garage %d: %w", id, err)
	}
	return &g, nil
}

func (r *AppointmentGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if isNotFound(err) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error; err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.withRelations(ctx).First(&ap, id).Error; err != nil {
		if isNotFound(err) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("get appointment %d: %w", id, err)
	}

	aps := []models.Appointment{ap}
	if err := r.attachProfiles(ctx, aps); err != nil {
		return nil, err
	}
	return &aps[0], nil
}

func (r *AppointmentGormRepository) UpdateStatus(ctx context.Context, id uint, status domain.Status) error {
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return fmt.Errorf("update appointment %d status: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) MarkNotified(ctx context.Context, id uint, kind string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_notification_sent_at": at.UTC(),
			"last_notification_type":    kind,
		})
	if res.Error != nil {
		return fmt.Errorf("mark appointment %d notified: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	status *domain.Status,
) ([]models.Appointment, error) {

	q := r.withRelations(ctx)
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var aps []models.Appointment
	if err := q.
		Order("appointment_date ASC").
		Order("time_slot ASC").
		Order("id ASC").
		Find(&aps).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	if err := r.attachProfiles(ctx, aps); err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Garage").
		Preload("Garage.Owner").
		Preload("Customer")
}

// attachProfiles looks up customer profiles by customer id in one query.
func (r *AppointmentGormRepository) attachProfiles(ctx context.Context, aps []models.Appointment) error {
	if len(aps) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(aps))
	seen := make(map[uint]bool, len(aps))
	for _, ap := range aps {
		if !seen[ap.CustomerID] {
			seen[ap.CustomerID] = true
			ids = append(ids, ap.CustomerID)
		}
	}

	var profiles []models.CustomerProfile
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error; err != nil {
		return fmt.Errorf("load customer profiles: %w", err)
	}

	byID := make(map[uint]*models.CustomerProfile, len(profiles))
	for i := range profiles {
		byID[profiles[i].ID] = &profiles[i]
	}
	for i := range aps {
		aps[i].CustomerProfile = byID[aps[i].CustomerID]
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)

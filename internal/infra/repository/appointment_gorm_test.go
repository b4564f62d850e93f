package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/garage-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/garage-booking/internal/models"
	"github.com/BruksfildServices01/garage-booking/internal/testutil"
)

type fixture struct {
	db       *gorm.DB
	repo     *AppointmentGormRepository
	garage   *models.Garage
	owner    *models.User
	customer *models.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	db := testutil.NewDB(t)
	ids := NewIdentityGormRepository(db)

	owner, garage := newOwner("owner@example.com")
	require.NoError(t, ids.CreateOwner(ctx, owner, garage))

	customer := &models.User{Name: "Asha", Email: "asha@example.com", PasswordHash: "x", Role: models.RoleCustomer}
	require.NoError(t, ids.CreateCustomer(ctx, customer, &models.CustomerProfile{VehicleNumber: "KA01", Phone: "111"}))

	return fixture{db: db, repo: NewAppointmentGormRepository(db), garage: garage, owner: owner, customer: customer}
}

func (f fixture) book(t *testing.T, date models.Date, slot string) *models.Appointment {
	t.Helper()
	ap := domain.New(domain.NewAppointment{
		GarageID:    f.garage.ID,
		CustomerID:  f.customer.ID,
		ServiceType: "Oil change",
		TimeSlot:    slot,
		Date:        date,
	})
	require.NoError(t, f.repo.CreateAppointment(context.Background(), ap))
	return ap
}

func TestAppointmentReferenceLookups(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	g, err := f.repo.GetGarage(ctx, f.garage.ID)
	require.NoError(t, err)
	assert.Equal(t, f.garage.GarageName, g.GarageName)

	_, err = f.repo.GetGarage(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrGarageNotFound)

	_, err = f.repo.GetUser(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestAppointmentGetLoadsRelations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ap := f.book(t, models.NewDate(2025, time.March, 3), "10:00")

	got, err := f.repo.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "PENDING", got.Status)
	assert.Equal(t, "2025-03-03", got.AppointmentDate.String())
	require.NotNil(t, got.Garage)
	require.NotNil(t, got.Garage.Owner)
	assert.Equal(t, "Ravi", got.Garage.Owner.Name)
	require.NotNil(t, got.Customer)
	assert.Equal(t, "asha@example.com", got.Customer.Email)
	require.NotNil(t, got.CustomerProfile)
	assert.Equal(t, "KA01", got.CustomerProfile.VehicleNumber)

	_, err = f.repo.GetAppointment(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)
}

func TestAppointmentListOrderAndFilter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	late := f.book(t, models.NewDate(2025, time.March, 5), "09:00")
	second := f.book(t, models.NewDate(2025, time.March, 3), "14:00")
	first := f.book(t, models.NewDate(2025, time.March, 3), "09:30")
	require.NoError(t, f.repo.UpdateStatus(ctx, second.ID, domain.StatusConfirmed))

	all, err := f.repo.ListAppointments(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint{first.ID, second.ID, late.ID}, []uint{all[0].ID, all[1].ID, all[2].ID})
	for _, ap := range all {
		assert.NotNil(t, ap.CustomerProfile)
		assert.NotNil(t, ap.Garage)
	}

	confirmed := domain.StatusConfirmed
	only, err := f.repo.ListAppointments(ctx, &confirmed)
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, second.ID, only[0].ID)

	cancelled := domain.StatusCancelled
	none, err := f.repo.ListAppointments(ctx, &cancelled)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAppointmentUpdateAndMarkNotified(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ap := f.book(t, models.NewDate(2025, time.March, 3), "10:00")

	require.NoError(t, f.repo.UpdateStatus(ctx, ap.ID, domain.StatusCompleted))
	at := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, f.repo.MarkNotified(ctx, ap.ID, models.NotificationConfirmedEmail, at))

	got, err := f.repo.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", got.Status)
	require.NotNil(t, got.LastNotificationSentAt)
	assert.True(t, at.Equal(*got.LastNotificationSentAt))
	assert.Equal(t, models.NotificationConfirmedEmail, got.LastNotificationType)

	assert.ErrorIs(t, f.repo.UpdateStatus(ctx, 999, domain.StatusPending), domain.ErrAppointmentNotFound)
	assert.ErrorIs(t, f.repo.MarkNotified(ctx, 999, "X", at), domain.ErrAppointmentNotFound)
}

func TestAppointmentTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	err := f.repo.Transaction(ctx, func(tx domain.Repository) error {
		ap := domain.New(domain.NewAppointment{
			GarageID:    f.garage.ID,
			CustomerID:  f.customer.ID,
			ServiceType: "Brakes",
			TimeSlot:    "11:00",
			Date:        models.NewDate(2025, time.April, 1),
		})
		require.NoError(t, tx.CreateAppointment(ctx, ap))
		_, err := tx.GetGarage(ctx, 999)
		return err
	})
	assert.ErrorIs(t, err, domain.ErrGarageNotFound)

	var count int64
	require.NoError(t, f.db.Model(&models.Appointment{}).Count(&count).Error)
	assert.Zero(t, count)
}

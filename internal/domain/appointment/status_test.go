package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/garage-booking/internal/httperr"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"PENDING", StatusPending},
		{"confirmed", StatusConfirmed},
		{" Cancelled ", StatusCancelled},
		{"completed", StatusCompleted},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "DONE", "confirm"} {
		_, err := ParseStatus(bad)
		assert.ErrorIs(t, err, ErrUnsupportedStatus, bad)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	}
}

func TestOnlyConfirmedNotifies(t *testing.T) {
	for _, s := range Statuses() {
		assert.Equal(t, s == StatusConfirmed, s.Notifies(), s)
	}
}

func TestChangeStatusIsUnrestricted(t *testing.T) {
	for _, from := range Statuses() {
		for _, to := range Statuses() {
			ap := &models.Appointment{Status: string(from)}
			require.NoError(t, ChangeStatus(ap, to))
			assert.Equal(t, string(to), ap.Status)
		}
	}

	ap := &models.Appointment{Status: string(StatusPending)}
	assert.ErrorIs(t, ChangeStatus(ap, Status("ARCHIVED")), ErrUnsupportedStatus)
	assert.Equal(t, string(StatusPending), ap.Status)
}

func TestNewStartsPending(t *testing.T) {
	ap := New(NewAppointment{
		GarageID:    3,
		CustomerID:  9,
		ServiceType: "Oil change",
		TimeSlot:    "10:00 AM",
		Date:        models.NewDate(2026, time.November, 2),
	})

	assert.Equal(t, string(StatusPending), ap.Status)
	assert.Equal(t, uint(3), ap.GarageID)
	assert.Equal(t, uint(9), ap.CustomerID)
	assert.False(t, ap.Notified())
}

func TestMarkNotifiedSetsBothFields(t *testing.T) {
	ap := &models.Appointment{}
	at := time.Date(2026, 10, 15, 9, 30, 0, 0, time.FixedZone("IST", 19800))

	MarkNotified(ap, models.NotificationConfirmedEmail, at)

	require.NotNil(t, ap.LastNotificationSentAt)
	assert.True(t, ap.LastNotificationSentAt.Equal(at))
	assert.Equal(t, time.UTC, ap.LastNotificationSentAt.Location())
	assert.Equal(t, "CONFIRMED_EMAIL", ap.LastNotificationType)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2025-03-03 ")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-03", d.String())

	for _, bad := range []string{"", "03/03/2025", "2025-3-3", "2025-02-30"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

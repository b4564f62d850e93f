package appointment

import (
	"context"
	"log/slog"
	"time"

	domain "github.com/BruksfildServices01/garage-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/garage-booking/internal/models"
	"github.com/BruksfildServices01/garage-booking/internal/notifier"
)

type UpdateStatusResult struct {
	Appointment      *models.Appointment
	NotificationSent bool
}

type UpdateAppointmentStatus struct {
	repo     domain.Repository
	notifier notifier.Notifier
	events   *Events
	log      *slog.Logger
	now      func() time.Time
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	n notifier.Notifier,
	events *Events,
	log *slog.Logger,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:     repo,
		notifier: n,
		events:   events,
		log:      log,
		now:      time.Now,
	}
}

// Execute moves the appointment to status. Entering CONFIRMED emails the
// customer after the status change is committed; a delivery failure only
// shows up as NotificationSent=false.
func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	status domain.Status,
) (*UpdateStatusResult, error) {

	// --------------------------------------------------
	// 1️⃣ Status change
	// --------------------------------------------------
	var (
		ap       *models.Appointment
		previous string
	)
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		found, err := tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}
		previous = found.Status

		if err := domain.ChangeStatus(found, status); err != nil {
			return err
		}
		if err := tx.UpdateStatus(ctx, found.ID, status); err != nil {
			return err
		}
		ap = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Notification
	// --------------------------------------------------
	sent := false
	if status.Notifies() {
		sent = uc.notifier.SendConfirmation(ctx, ap)
		if sent {
			uc.stampNotification(ctx, ap)
		}
	}

	// --------------------------------------------------
	// 3️⃣ Reload
	// --------------------------------------------------
	saved, err := uc.repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	uc.events.statusChanged(ctx, saved, previous, sent)

	return &UpdateStatusResult{Appointment: saved, NotificationSent: sent}, nil
}

// stampNotification records a delivered notification. The message is already
// out, so a store failure here is logged and not returned.
func (uc *UpdateAppointmentStatus) stampNotification(ctx context.Context, ap *models.Appointment) {
	at := uc.now()
	if err := uc.repo.MarkNotified(ctx, ap.ID, models.NotificationConfirmedEmail, at); err != nil {
		uc.log.Error("failed to record confirmation email",
			"appointment_id", ap.ID,
			"error", err)
		return
	}
	domain.MarkNotified(ap, models.NotificationConfirmedEmail, at)
}

package appointment

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/garage-booking/internal/audit"
	"github.com/BruksfildServices01/garage-booking/internal/models"
	"github.com/BruksfildServices01/garage-booking/internal/mq"
)

// Events fans appointment lifecycle changes out to the audit trail and the
// message broker. Neither failure reaches the caller.
type Events struct {
	audit     audit.Recorder
	publisher mq.EventPublisher
	log       *slog.Logger
	now       func() time.Time
}

func NewEvents(rec audit.Recorder, pub mq.EventPublisher, log *slog.Logger) *Events {
	return &Events{audit: rec, publisher: pub, log: log, now: time.Now}
}

func (e *Events) created(ctx context.Context, ap *models.Appointment) {
	e.audit.Dispatch(audit.Event{
		GarageID: ap.GarageID,
		UserID:   &ap.CustomerID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   audit.EntityAppointment,
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"appointmentDate": ap.AppointmentDate.String(),
			"timeSlot":        ap.TimeSlot,
			"serviceType":     ap.ServiceType,
		},
	})
	e.publish(ctx, mq.KeyAppointmentCreated, mq.NewAppointmentEvent(ap, "", false, e.now()))
}

func (e *Events) statusChanged(ctx context.Context, ap *models.Appointment, previous string, notified bool) {
	e.audit.Dispatch(audit.Event{
		GarageID: ap.GarageID,
		Action:   audit.ActionAppointmentStatusChanged,
		Entity:   audit.EntityAppointment,
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from":             previous,
			"to":               ap.Status,
			"notificationSent": notified,
		},
	})
	e.publish(ctx, mq.KeyAppointmentStatusChanged, mq.NewAppointmentEvent(ap, previous, notified, e.now()))
}

func (e *Events) publish(ctx context.Context, key string, ev mq.AppointmentEvent) {
	if err := e.publisher.PublishJSON(ctx, key, ev); err != nil {
		e.log.Warn("publish appointment event failed",
			"key", key,
			"appointment_id", ev.AppointmentID,
			"error", err)
	}
}

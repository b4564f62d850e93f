// Package notifier tells customers about changes to their appointments.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domain "github.com/BruksfildServices01/garage-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/garage-booking/internal/models"
)

const (
	DefaultFrom         = "no-reply@pitstopservix.com"
	ConfirmationSubject = "Your PitStop Servix appointment is confirmed"

	scheduleDateLayout = "Monday, Jan 2"
)

const confirmationBody = `Hi %s,

Great news! Your PitStop Servix appointment with %s has been confirmed.

• Service: %s
• Schedule: %s
• Notes: %s

Need to reschedule? Reply to this email or reach out from the app anytime.

See you soon,
Team PitStop Servix
`

type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Transport delivers a composed message.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

// Notifier reports whether a confirmation went out. It never returns an error.
type Notifier interface {
	SendConfirmation(ctx context.Context, ap *models.Appointment) bool
}

type EmailNotifier struct {
	transport Transport
	from      string
	log       *slog.Logger
}

func NewEmailNotifier(transport Transport, from string, log *slog.Logger) *EmailNotifier {
	if strings.TrimSpace(from) == "" {
		from = DefaultFrom
	}
	return &EmailNotifier{transport: transport, from: from, log: log}
}

func (n *EmailNotifier) SendConfirmation(ctx context.Context, ap *models.Appointment) bool {
	to := strings.TrimSpace(domain.CustomerEmail(ap))
	if to == "" {
		n.log.Warn("skipping confirmation email, customer email missing",
			"appointment_id", ap.ID)
		return false
	}

	msg := Message{
		From:    n.from,
		To:      to,
		Subject: ConfirmationSubject,
		Body:    ConfirmationBody(ap),
	}

	if err := n.transport.Send(ctx, msg); err != nil {
		n.log.Error("failed to send confirmation email",
			"appointment_id", ap.ID,
			"error", err)
		return false
	}
	return true
}

// ConfirmationBody renders the confirmation text. Missing fields fall back
// to neutral wording.
func ConfirmationBody(ap *models.Appointment) string {
	customerName := "Customer"
	if ap.Customer != nil {
		customerName = orDefault(ap.Customer.Name, customerName)
	}

	garageName := "your selected garage"
	if ap.Garage != nil {
		garageName = orDefault(ap.Garage.GarageName, garageName)
	}

	schedule := "your scheduled date"
	if !ap.AppointmentDate.IsZero() {
		schedule = ap.AppointmentDate.Format(scheduleDateLayout)
	}
	if slot := strings.TrimSpace(ap.TimeSlot); slot != "" {
		schedule += " at " + slot
	}

	return fmt.Sprintf(confirmationBody,
		customerName,
		garageName,
		orDefault(ap.ServiceType, "General Service"),
		schedule,
		orDefault(ap.Notes, "N/A"),
	)
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

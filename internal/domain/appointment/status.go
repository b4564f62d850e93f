package appointment

import (
	"strings"

	"github.com/BruksfildServices01/garage-booking/internal/httperr"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

var statuses = []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

var ErrUnsupportedStatus = httperr.ErrValidation("unsupported_status", "Unsupported appointment status")

// ParseStatus accepts any casing of a known status name.
func ParseStatus(s string) (Status, error) {
	candidate := Status(strings.ToUpper(strings.TrimSpace(s)))
	if candidate.Valid() {
		return candidate, nil
	}
	return "", ErrUnsupportedStatus
}

func (s Status) Valid() bool {
	for _, known := range statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Notifies reports whether entering s sends the customer a message.
func (s Status) Notifies() bool {
	return s == StatusConfirmed
}

func InitialStatus() Status {
	return StatusPending
}

func Statuses() []Status {
	return append([]Status(nil), statuses...)
}

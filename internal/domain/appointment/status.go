package appointment

import "github.com/aanjanaji/physio-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Validations
// ===============================

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// CanSetStatus validates an admin status update. Cancelled is terminal.
func CanSetStatus(current, next Status) error {
	if !IsValid(next) {
		return httperr.ErrBusiness("invalid_status")
	}
	if current == StatusCancelled && next != StatusCancelled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

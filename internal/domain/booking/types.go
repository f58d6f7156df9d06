package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Occupying reports whether the booking holds its room for its stay.
// Only occupying bookings participate in the overlap invariant; a
// cancelled booking frees the room.
func (s Status) Occupying() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo encodes the booking lifecycle:
// pending → confirmed | cancelled, confirmed → cancelled | completed.
// Cancelled and completed are terminal (bookings are never deleted).
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled || next == StatusCompleted
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a committed or proposed stay for one room instance over a
// stay range. Rows are append-mostly: status transitions are the only
// mutation, and bookings are never hard-deleted.
type Booking struct {
	id              uuid.UUID
	roomInstanceID  uuid.UUID
	contact         GuestContact
	stay            StayRange
	guests          int
	totalAmount     Money
	status          Status
	specialRequests SpecialRequests
	createdAt       time.Time
	updatedAt       time.Time
}

func Reconstruct(
	id, roomInstanceID uuid.UUID,
	contact GuestContact,
	stay StayRange,
	guests int,
	totalAmount Money,
	status Status,
	specialRequests SpecialRequests,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		roomInstanceID:  roomInstanceID,
		contact:         contact,
		stay:            stay,
		guests:          guests,
		totalAmount:     totalAmount,
		status:          status,
		specialRequests: specialRequests,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) RoomInstanceID() uuid.UUID        { return b.roomInstanceID }
func (b *Booking) Contact() GuestContact            { return b.contact }
func (b *Booking) Stay() StayRange                  { return b.stay }
func (b *Booking) Guests() int                      { return b.guests }
func (b *Booking) TotalAmount() Money               { return b.totalAmount }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) SpecialRequests() SpecialRequests { return b.specialRequests }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }

func (b *Booking) IsOccupying() bool {
	return b.status.Occupying()
}

// TransitionTo validates the lifecycle and applies the new status.
func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return &TransitionError{From: b.status, To: next}
	}
	b.status = next
	return nil
}

// TransitionError reports a rejected status change with both endpoints
// so callers can render an actionable message.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return "cannot transition booking from " + e.From.String() + " to " + e.To.String()
}

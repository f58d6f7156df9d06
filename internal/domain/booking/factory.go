package booking

import (
	"fmt"

	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/pkg/clock"

	"github.com/google/uuid"
)

// CapacityError carries the room's limit so the caller can render
// "This room can accommodate maximum N guests".
type CapacityError struct {
	MaxGuests int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("this room can accommodate maximum %d guests", e.MaxGuests)
}

// Factory builds admissible bookings. The price is computed here from
// the room type's rate at admission time and frozen onto the booking:
// later rate changes never touch committed rows.
type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

func (f *Factory) NewBooking(
	instance *room.Instance,
	contact GuestContact,
	stay StayRange,
	guests int,
	specialRequests SpecialRequests,
) (*Booking, error) {
	if stay.StartsBefore(f.Clock.Today()) {
		return nil, ErrPastCheckIn
	}

	roomType := instance.RoomType()
	if !roomType.Accommodates(guests) {
		return nil, &CapacityError{MaxGuests: roomType.MaxGuests()}
	}

	rate, err := NewMoney(roomType.PricePerNightCents())
	if err != nil {
		return nil, err
	}
	total := rate.MulNights(stay.Nights())

	return &Booking{
		id:              uuid.New(),
		roomInstanceID:  instance.ID(),
		contact:         contact,
		stay:            stay,
		guests:          guests,
		totalAmount:     total,
		status:          StatusConfirmed,
		specialRequests: specialRequests,
	}, nil
}

package commands

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidRequest          = errs.New("invalid booking request")
	ErrRoomNotFound            = errs.New("room not found")
	ErrRoomUnavailable         = errs.New("room is not available for the selected dates")
	ErrAvailabilityCheckFailed = errs.New("failed to check room availability")
	ErrAdmissionFailed         = errs.New("failed to create booking")
	ErrBookingNotFound         = errs.New("booking not found")
)

type CreateBookingInput struct {
	RoomInstanceID  uuid.UUID
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	CheckInDate     time.Time
	CheckOutDate    time.Time
	Guests          int
	SpecialRequests string
}

// CreateBookingResult reports the committed booking plus per-channel
// notification outcomes. The booking stands regardless of the booleans:
// a false value is a warning, not a failure.
type CreateBookingResult struct {
	BookingID        uuid.UUID
	Status           string
	Nights           int
	TotalAmountCents int64
	EmailSent        bool
	WhatsAppSent     bool
}

type BookingCommands interface {
	Create(ctx context.Context, input CreateBookingInput) (*CreateBookingResult, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, next string) error
}

type bookingUseCaseImpl struct {
	notifyRunner
	factory *booking.Factory
	clock   clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, dispatchers []Dispatcher) BookingCommands {
	return &bookingUseCaseImpl{
		notifyRunner: notifyRunner{uow: uow, dispatchers: dispatchers},
		factory:      booking.NewFactory(clk),
		clock:        clk,
	}
}

// Create admits one stay: validate, resolve the room, check
// availability, freeze the price and commit, all inside a single
// transaction. The storage-level exclusion constraint backs the
// availability check, so two concurrent requests for an overlapping
// stay can never both commit. Notifications run after commit and
// cannot undo the booking.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, input CreateBookingInput) (*CreateBookingResult, error) {
	contact, err := booking.NewGuestContact(input.FirstName, input.LastName, input.Email, input.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequest)
	}

	// Past check-in wins over every later rule, including an inverted
	// range or an unknown room.
	if err := booking.ValidateCheckIn(input.CheckInDate, uc.clock.Today()); err != nil {
		return nil, err
	}

	stay, err := booking.NewStayRange(input.CheckInDate, input.CheckOutDate)
	if err != nil {
		return nil, err
	}

	var (
		committed *booking.Booking
		snap      *shared.RoomInstanceSnapshot
	)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err = tx.Reads().RoomInstanceByID(ctx, input.RoomInstanceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRoomNotFound)
			}
			return errs.Mark(err, ErrAdmissionFailed)
		}

		instance, err := instanceFromSnapshot(snap)
		if err != nil {
			return errs.Mark(err, ErrAdmissionFailed)
		}
		if !instance.Bookable() {
			// Deactivated rooms are invisible to guests.
			return ErrRoomNotFound
		}

		b, err := uc.factory.NewBooking(instance, contact, stay, input.Guests, booking.NewSpecialRequests(input.SpecialRequests))
		if err != nil {
			return err
		}

		available, err := tx.Reads().IsRoomInstanceAvailable(ctx, instance.ID(), stay)
		if err != nil {
			return errs.Mark(err, ErrAvailabilityCheckFailed)
		}
		if !available {
			return ErrRoomUnavailable
		}

		if _, err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				// Lost the race: a concurrent booking took the range
				// between our check and insert.
				return errs.Mark(err, ErrRoomUnavailable)
			}
			return errs.Mark(err, ErrAdmissionFailed)
		}

		committed = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &CreateBookingResult{
		BookingID:        committed.ID(),
		Status:           committed.Status().String(),
		Nights:           stay.Nights(),
		TotalAmountCents: committed.TotalAmount().Cents(),
	}

	outcomes := uc.dispatchAll(ctx, buildBookingMessage(committed, snap))
	for _, o := range outcomes {
		switch o.attempt.Channel {
		case ChannelEmail:
			result.EmailSent = o.sent
		case ChannelWhatsApp:
			result.WhatsAppSent = o.sent
		}
	}
	uc.recordAttempts(ctx, outcomes)

	return result, nil
}

func instanceFromSnapshot(snap *shared.RoomInstanceSnapshot) (*room.Instance, error) {
	roomType, err := room.NewType(snap.RoomTypeID, snap.RoomTypeName, snap.MaxGuests, snap.PricePerNightCents, snap.RoomTypeActive)
	if err != nil {
		return nil, err
	}
	return room.NewInstance(snap.ID, roomType, snap.RoomNumber, snap.Floor, snap.IsActive)
}

func buildBookingMessage(b *booking.Booking, snap *shared.RoomInstanceSnapshot) BookingMessage {
	return BookingMessage{
		Kind:             MessageConfirmation,
		BookingID:        b.ID(),
		GuestFirstName:   b.Contact().FirstName(),
		GuestLastName:    b.Contact().LastName(),
		GuestEmail:       b.Contact().Email(),
		GuestPhone:       b.Contact().Phone(),
		RoomTypeName:     snap.RoomTypeName,
		RoomNumber:       snap.RoomNumber,
		CheckInDate:      b.Stay().CheckIn(),
		CheckOutDate:     b.Stay().CheckOut(),
		Nights:           b.Stay().Nights(),
		Guests:           b.Guests(),
		TotalAmountCents: b.TotalAmount().Cents(),
	}
}

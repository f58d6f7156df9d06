//go:build unit || e2e

package builder

import (
	"time"

	dombooking "hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/room"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// BaseDay is the frozen "today" used by booking builders, so date
// validation in tests never depends on the wall clock.
var BaseDay = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	RoomInstanceID     uuid.UUID
	RoomTypeID         uuid.UUID
	RoomTypeName       string
	RoomNumber         string
	Floor              int
	MaxGuests          int
	PricePerNightCents int64
	RoomActive         bool
	InstanceActive     bool

	FirstName       string
	LastName        string
	Email           string
	Phone           string
	CheckInDate     time.Time
	CheckOutDate    time.Time
	Guests          int
	SpecialRequests string
	Status          string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		RoomInstanceID:     uuid.New(),
		RoomTypeID:         uuid.New(),
		RoomTypeName:       "Deluxe Double",
		RoomNumber:         "204",
		Floor:              2,
		MaxGuests:          2,
		PricePerNightCents: 15000,
		RoomActive:         true,
		InstanceActive:     true,

		FirstName:       "Maria",
		LastName:        "Silva",
		Email:           "maria.silva@example.com",
		Phone:           "+351912345678",
		CheckInDate:     BaseDay.AddDate(0, 0, 9),
		CheckOutDate:    BaseDay.AddDate(0, 0, 12),
		Guests:          2,
		SpecialRequests: "",
		Status:          "confirmed",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Clock() *clock.MockClock {
	return clock.NewMockClock(BaseDay.Add(10 * time.Hour))
}

func (b *BookingBuilder) BuildInstance() (*room.Instance, error) {
	roomType, err := room.NewType(b.RoomTypeID, b.RoomTypeName, b.MaxGuests, b.PricePerNightCents, b.RoomActive)
	if err != nil {
		return nil, err
	}
	return room.NewInstance(b.RoomInstanceID, roomType, b.RoomNumber, b.Floor, b.InstanceActive)
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	instance, err := b.BuildInstance()
	if err != nil {
		return nil, err
	}
	stay, err := dombooking.NewStayRange(b.CheckInDate, b.CheckOutDate)
	if err != nil {
		return nil, err
	}
	contact, err := dombooking.NewGuestContact(b.FirstName, b.LastName, b.Email, b.Phone)
	if err != nil {
		return nil, err
	}

	factory := dombooking.NewFactory(b.Clock())
	return factory.NewBooking(instance, contact, stay, b.Guests, dombooking.NewSpecialRequests(b.SpecialRequests))
}

func (b *BookingBuilder) BuildSnapshot() *shared.RoomInstanceSnapshot {
	return &shared.RoomInstanceSnapshot{
		ID:                 b.RoomInstanceID,
		RoomNumber:         b.RoomNumber,
		Floor:              b.Floor,
		IsActive:           b.InstanceActive,
		RoomTypeID:         b.RoomTypeID,
		RoomTypeName:       b.RoomTypeName,
		MaxGuests:          b.MaxGuests,
		PricePerNightCents: b.PricePerNightCents,
		RoomTypeActive:     b.RoomActive,
	}
}

func (b *BookingBuilder) BuildCreateInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		RoomInstanceID:  b.RoomInstanceID,
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		Phone:           b.Phone,
		CheckInDate:     b.CheckInDate,
		CheckOutDate:    b.CheckOutDate,
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomInstanceID:  b.RoomInstanceID,
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		Phone:           b.Phone,
		CheckInDate:     b.CheckInDate.Format(time.DateOnly),
		CheckOutDate:    b.CheckOutDate.Format(time.DateOnly),
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	nights := int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
	var specialRequests *string
	if b.SpecialRequests != "" {
		v := b.SpecialRequests
		specialRequests = &v
	}

	return &queries.BookingView{
		ID:               uuid.New(),
		RoomInstanceID:   b.RoomInstanceID,
		RoomNumber:       b.RoomNumber,
		RoomTypeName:     b.RoomTypeName,
		GuestFirstName:   b.FirstName,
		GuestLastName:    b.LastName,
		GuestEmail:       b.Email,
		GuestPhone:       b.Phone,
		CheckInDate:      b.CheckInDate,
		CheckOutDate:     b.CheckOutDate,
		Nights:           nights,
		Guests:           b.Guests,
		TotalAmountCents: b.PricePerNightCents * int64(nights),
		Status:           b.Status,
		SpecialRequests:  specialRequests,
		CreatedAt:        BaseDay,
		UpdatedAt:        BaseDay,
	}
}

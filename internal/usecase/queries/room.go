package queries

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomSearch = errs.New("failed to search available rooms")

// AvailableRoomView is one bookable room instance for a requested stay,
// with the frozen nightly rate a subsequent admission would use.
type AvailableRoomView struct {
	RoomInstanceID     uuid.UUID
	RoomNumber         string
	Floor              int
	RoomTypeID         uuid.UUID
	RoomTypeName       string
	MaxGuests          int
	PricePerNightCents int64
	TotalAmountCents   int64
	Nights             int
}

type RoomReadStore interface {
	// AvailableInstances returns active instances of active room types
	// that fit the guest count and have no occupying booking
	// overlapping the stay.
	AvailableInstances(ctx context.Context, stay booking.StayRange, guests int) ([]AvailableRoomView, error)
}

type RoomQueries interface {
	SearchAvailable(ctx context.Context, checkIn, checkOut time.Time, guests int) ([]AvailableRoomView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
	clk   clock.Clock
}

func NewRoomQueries(store RoomReadStore, clk clock.Clock) RoomQueries {
	return &roomQueriesImpl{store: store, clk: clk}
}

// SearchAvailable applies the same date rules as admission so the
// search never offers a stay that booking would reject.
func (q *roomQueriesImpl) SearchAvailable(ctx context.Context, checkIn, checkOut time.Time, guests int) ([]AvailableRoomView, error) {
	if err := booking.ValidateCheckIn(checkIn, q.clk.Today()); err != nil {
		return nil, err
	}
	stay, err := booking.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if guests < 1 {
		guests = 1
	}

	views, err := q.store.AvailableInstances(ctx, stay, guests)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomSearch)
	}

	for i := range views {
		views[i].Nights = stay.Nights()
		views[i].TotalAmountCents = views[i].PricePerNightCents * int64(stay.Nights())
	}

	return views, nil
}

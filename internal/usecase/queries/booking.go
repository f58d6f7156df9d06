package queries

import (
	"context"
	"time"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingSearch   = errs.New("failed to search bookings")
)

// BookingView is the read model returned to API clients. Amounts stay
// in cents; presentation decides formatting.
type BookingView struct {
	ID               uuid.UUID
	RoomInstanceID   uuid.UUID
	RoomNumber       string
	RoomTypeName     string
	GuestFirstName   string
	GuestLastName    string
	GuestEmail       string
	GuestPhone       string
	CheckInDate      time.Time
	CheckOutDate     time.Time
	Nights           int
	Guests           int
	TotalAmountCents int64
	Status           string
	SpecialRequests  *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BookingSearchFilters narrows the admin booking list. Zero values mean
// "no filter"; CheckInFrom/To bound the check-in date.
type BookingSearchFilters struct {
	Status      string
	GuestName   string
	GuestEmail  string
	RoomNumber  string
	CheckInFrom *time.Time
	CheckInTo   *time.Time
	Limit       int
	Offset      int
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	Search(ctx context.Context, filters BookingSearchFilters) ([]BookingView, error)
	// FindCheckingInOn lists confirmed bookings whose stay starts on
	// the given day, for the reminder sweep.
	FindCheckingInOn(ctx context.Context, day time.Time) ([]BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	Search(ctx context.Context, filters BookingSearchFilters) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrBookingSearch)
	}
	return view, nil
}

func (q *bookingQueriesImpl) Search(ctx context.Context, filters BookingSearchFilters) ([]BookingView, error) {
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 50
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	views, err := q.store.Search(ctx, filters)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingSearch)
	}
	return views, nil
}

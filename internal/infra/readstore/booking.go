package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	dbtx db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{dbtx: dbtx}
}

// IsRoomInstanceAvailable runs the half-open overlap test in SQL:
// an existing stay [c,d) overlaps the requested [a,b) iff c < b and
// a < d. Adjacent stays (d == a or b == c) do not collide. Only
// occupying statuses block the range.
func (s *BookingReadStore) IsRoomInstanceAvailable(ctx context.Context, roomInstanceID uuid.UUID, stay booking.StayRange) (bool, error) {
	const query = `
		SELECT NOT EXISTS (
			SELECT 1
			FROM bookings
			WHERE room_instance_id = $1
			  AND status IN ('pending', 'confirmed')
			  AND check_in_date < $3
			  AND $2 < check_out_date
		)
	`

	var available bool
	err := s.dbtx.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(roomInstanceID),
		pgconv.DateToPgtype(stay.CheckIn()),
		pgconv.DateToPgtype(stay.CheckOut()),
	).Scan(&available)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room availability", err)
	}

	return available, nil
}

func (s *BookingReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT id, room_instance_id,
		       guest_first_name, guest_last_name, guest_email, guest_phone,
		       check_in_date, check_out_date, guests,
		       total_amount_cents, status, special_requests
		FROM bookings
		WHERE id = $1
	`

	var (
		bookingID       pgtype.UUID
		roomInstanceID  pgtype.UUID
		checkIn         pgtype.Date
		checkOut        pgtype.Date
		specialRequests pgtype.Text
		snap            shared.BookingSnapshot
	)

	err := s.dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&bookingID,
		&roomInstanceID,
		&snap.GuestFirstName,
		&snap.GuestLastName,
		&snap.GuestEmail,
		&snap.GuestPhone,
		&checkIn,
		&checkOut,
		&snap.Guests,
		&snap.TotalAmountCents,
		&snap.Status,
		&specialRequests,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	snap.ID = uuid.UUID(bookingID.Bytes)
	snap.RoomInstanceID = uuid.UUID(roomInstanceID.Bytes)
	snap.CheckInDate = pgconv.DateFromPgtype(checkIn)
	snap.CheckOutDate = pgconv.DateFromPgtype(checkOut)
	snap.SpecialRequests = pgconv.StringPtrFromPgtype(specialRequests)

	return &snap, nil
}

const bookingViewColumns = `
	b.id, b.room_instance_id, ri.room_number, r.name,
	b.guest_first_name, b.guest_last_name, b.guest_email, b.guest_phone,
	b.check_in_date, b.check_out_date, b.guests,
	b.total_amount_cents, b.status, b.special_requests,
	b.created_at, b.updated_at
`

const bookingViewJoins = `
	FROM bookings b
	JOIN room_instances ri ON ri.id = b.room_instance_id
	JOIN rooms r ON r.id = ri.room_id
`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `SELECT ` + bookingViewColumns + bookingViewJoins + ` WHERE b.id = $1`

	row := s.dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id))
	view, err := scanBookingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	return view, nil
}

func (s *BookingReadStore) Search(ctx context.Context, filters queries.BookingSearchFilters) ([]queries.BookingView, error) {
	var (
		conds []string
		args  []any
	)

	appendCond := func(expr string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if filters.Status != "" {
		appendCond("b.status = $%d", filters.Status)
	}
	if filters.GuestName != "" {
		appendCond("(b.guest_first_name || ' ' || b.guest_last_name) ILIKE $%d", "%"+filters.GuestName+"%")
	}
	if filters.GuestEmail != "" {
		appendCond("b.guest_email = $%d", strings.ToLower(filters.GuestEmail))
	}
	if filters.RoomNumber != "" {
		appendCond("ri.room_number = $%d", filters.RoomNumber)
	}
	if filters.CheckInFrom != nil {
		appendCond("b.check_in_date >= $%d", pgconv.DateToPgtype(*filters.CheckInFrom))
	}
	if filters.CheckInTo != nil {
		appendCond("b.check_in_date <= $%d", pgconv.DateToPgtype(*filters.CheckInTo))
	}

	query := `SELECT ` + bookingViewColumns + bookingViewJoins
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filters.Limit)
	query += fmt.Sprintf(" ORDER BY b.created_at DESC LIMIT $%d", len(args))
	args = append(args, filters.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := s.dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search bookings", err)
	}
	defer rows.Close()

	var views []queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return views, nil
}

func (s *BookingReadStore) FindCheckingInOn(ctx context.Context, day time.Time) ([]queries.BookingView, error) {
	query := `SELECT ` + bookingViewColumns + bookingViewJoins +
		` WHERE b.status = 'confirmed' AND b.check_in_date = $1 ORDER BY b.created_at`

	rows, err := s.dbtx.Query(ctx, query, pgconv.DateToPgtype(clock.Midnight(day)))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list check-in bookings", err)
	}
	defer rows.Close()

	var views []queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return views, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var (
		id              pgtype.UUID
		roomInstanceID  pgtype.UUID
		checkIn         pgtype.Date
		checkOut        pgtype.Date
		specialRequests pgtype.Text
		createdAt       pgtype.Timestamptz
		updatedAt       pgtype.Timestamptz
		view            queries.BookingView
	)

	err := row.Scan(
		&id,
		&roomInstanceID,
		&view.RoomNumber,
		&view.RoomTypeName,
		&view.GuestFirstName,
		&view.GuestLastName,
		&view.GuestEmail,
		&view.GuestPhone,
		&checkIn,
		&checkOut,
		&view.Guests,
		&view.TotalAmountCents,
		&view.Status,
		&specialRequests,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.ID = uuid.UUID(id.Bytes)
	view.RoomInstanceID = uuid.UUID(roomInstanceID.Bytes)
	view.CheckInDate = pgconv.DateFromPgtype(checkIn)
	view.CheckOutDate = pgconv.DateFromPgtype(checkOut)
	view.Nights = int(view.CheckOutDate.Sub(view.CheckInDate).Hours() / 24)
	view.SpecialRequests = pgconv.StringPtrFromPgtype(specialRequests)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &view, nil
}

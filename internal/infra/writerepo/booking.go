package writerepo

import (
	"context"
	"errors"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeExclusionViolation  = "23P01"
)

type BookingRepository struct{}

func NewBookingRepository() shared.BookingRepository {
	return &BookingRepository{}
}

// Create relies on the bookings exclusion constraint for the no-overlap
// guarantee: two concurrent inserts for the same room instance and
// overlapping stay cannot both commit. The losing insert comes back as
// an exclusion violation, classified as CONFLICT.
func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (
			id, room_instance_id,
			guest_first_name, guest_last_name, guest_email, guest_phone,
			check_in_date, check_out_date, guests,
			total_amount_cents, status, special_requests
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	var specialRequests *string
	if !b.SpecialRequests().IsEmpty() {
		v := b.SpecialRequests().String()
		specialRequests = &v
	}

	var id pgtype.UUID
	err := dbtx.QueryRow(ctx, query,
		pgconv.UUIDToPgtype(b.ID()),
		pgconv.UUIDToPgtype(b.RoomInstanceID()),
		b.Contact().FirstName(),
		b.Contact().LastName(),
		b.Contact().Email(),
		b.Contact().Phone(),
		pgconv.DateToPgtype(b.Stay().CheckIn()),
		pgconv.DateToPgtype(b.Stay().CheckOut()),
		b.Guests(),
		b.TotalAmount().Cents(),
		b.Status().String(),
		pgconv.StringPtrToPgtype(specialRequests),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to create booking", err)
	}

	return uuid.UUID(id.Bytes), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	const query = `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE id = $1
	`

	tag, err := dbtx.Exec(ctx, query, pgconv.UUIDToPgtype(id), status.String())
	if err != nil {
		return classifyWriteErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

func classifyWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}

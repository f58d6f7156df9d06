package shared

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: direct access to command-side reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the write-path lookups: room resolution and the
// availability oracle. Inside Within they observe the transaction, so
// oracle + insert behave as one serialized unit per room instance.
type CommandReads interface {
	RoomInstanceByID(ctx context.Context, id uuid.UUID) (*RoomInstanceSnapshot, error)
	// IsRoomInstanceAvailable is the availability oracle: true iff no
	// booking with an occupying status overlaps [checkIn, checkOut) on
	// the room instance. A storage failure is a repository error and
	// must never be treated as available.
	IsRoomInstanceAvailable(ctx context.Context, roomInstanceID uuid.UUID, stay booking.StayRange) (bool, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

type BookingRepository interface {
	// Create inserts the booking row. The ledger enforces the
	// no-overlap invariant itself (exclusion constraint); an
	// overlapping insert surfaces as a CONFLICT repository error.
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error
}

type NotificationRepository interface {
	// RecordAttempt appends to the observational notification ledger.
	// It never blocks or reverses a booking.
	RecordAttempt(ctx context.Context, dbtx db.DBTX, attempt NotificationAttempt) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}

package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side view types.

// RoomInstanceSnapshot is a room instance joined with its room type,
// as the admission path needs both in one read.
type RoomInstanceSnapshot struct {
	ID                 uuid.UUID
	RoomNumber         string
	Floor              int
	IsActive           bool
	RoomTypeID         uuid.UUID
	RoomTypeName       string
	MaxGuests          int
	PricePerNightCents int64
	RoomTypeActive     bool
}

type BookingSnapshot struct {
	ID               uuid.UUID
	RoomInstanceID   uuid.UUID
	GuestFirstName   string
	GuestLastName    string
	GuestEmail       string
	GuestPhone       string
	CheckInDate      time.Time
	CheckOutDate     time.Time
	Guests           int
	TotalAmountCents int64
	Status           string
	SpecialRequests  *string
}

// UserAccount is the credential-bearing staff record read by login.
// It stays on the command side; views never expose the hash.
type UserAccount struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	FirstName    string
	LastName     string
	IsActive     bool
}

// NotificationAttempt is one row of the observational delivery ledger.
type NotificationAttempt struct {
	BookingID uuid.UUID
	Channel   string // "email" | "whatsapp"
	Recipient string
	Status    string // "sent" | "failed" | "skipped"
	Error     *string
}

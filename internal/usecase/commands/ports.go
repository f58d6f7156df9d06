package commands

import (
	"context"
	"time"

	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// MessageKind selects the template a channel renders.
type MessageKind string

const (
	MessageConfirmation MessageKind = "confirmation"
	MessageReminder     MessageKind = "reminder"
)

// BookingMessage carries everything a channel needs to render a
// confirmation or reminder. Built from the committed booking, never
// from request input.
type BookingMessage struct {
	Kind             MessageKind
	BookingID        uuid.UUID
	GuestFirstName   string
	GuestLastName    string
	GuestEmail       string
	GuestPhone       string
	RoomTypeName     string
	RoomNumber       string
	CheckInDate      time.Time
	CheckOutDate     time.Time
	Nights           int
	Guests           int
	TotalAmountCents int64
}

// Dispatcher sends one notification channel. Implementations must be
// safe to call after the booking transaction has committed: a failure
// is reported, never propagated into the booking outcome.
type Dispatcher interface {
	// Channel is the ledger tag: "email" or "whatsapp".
	Channel() string
	// Enabled reports whether the channel is configured. Disabled
	// channels record "skipped" attempts.
	Enabled() bool
	Send(ctx context.Context, msg BookingMessage) error
}

// UserFinder is the credential lookup used by login.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*shared.UserAccount, error)
}

package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomTypeName   = errors.New("room type name cannot be empty")
	ErrRoomTypeNameTooLong = errors.New("room type name is too long (max 255 characters)")
	ErrInvalidMaxGuests    = errors.New("max guests must be at least 1")
	ErrNegativeRate        = errors.New("nightly rate cannot be negative")
	ErrEmptyRoomNumber     = errors.New("room number cannot be empty")
)

const MaxRoomTypeNameLength = 255

// Type is a class of room ("Deluxe", "Standard Twin") with shared
// capacity and nightly rate. Rate changes never retroactively alter
// committed bookings: the amount is frozen on the booking at admission.
type Type struct {
	id                 uuid.UUID
	name               string
	maxGuests          int
	pricePerNightCents int64
	isActive           bool
}

func NewType(id uuid.UUID, name string, maxGuests int, pricePerNightCents int64, isActive bool) (*Type, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomTypeName
	}
	if len(name) > MaxRoomTypeNameLength {
		return nil, ErrRoomTypeNameTooLong
	}
	if maxGuests < 1 {
		return nil, ErrInvalidMaxGuests
	}
	if pricePerNightCents < 0 {
		return nil, ErrNegativeRate
	}

	return &Type{
		id:                 id,
		name:               name,
		maxGuests:          maxGuests,
		pricePerNightCents: pricePerNightCents,
		isActive:           isActive,
	}, nil
}

func (t *Type) ID() uuid.UUID             { return t.id }
func (t *Type) Name() string              { return t.name }
func (t *Type) MaxGuests() int            { return t.maxGuests }
func (t *Type) PricePerNightCents() int64 { return t.pricePerNightCents }
func (t *Type) IsActive() bool            { return t.isActive }

func (t *Type) Accommodates(guests int) bool {
	return guests >= 1 && guests <= t.maxGuests
}

// Instance is one physical, individually bookable room belonging to a
// Type. At most one occupying booking per calendar night.
type Instance struct {
	id         uuid.UUID
	roomType   *Type
	roomNumber string
	floor      int
	isActive   bool
}

func NewInstance(id uuid.UUID, roomType *Type, roomNumber string, floor int, isActive bool) (*Instance, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return nil, ErrEmptyRoomNumber
	}
	if roomType == nil {
		return nil, errors.New("room instance requires a room type")
	}

	return &Instance{
		id:         id,
		roomType:   roomType,
		roomNumber: roomNumber,
		floor:      floor,
		isActive:   isActive,
	}, nil
}

func (i *Instance) ID() uuid.UUID      { return i.id }
func (i *Instance) RoomType() *Type    { return i.roomType }
func (i *Instance) RoomNumber() string { return i.roomNumber }
func (i *Instance) Floor() int         { return i.floor }
func (i *Instance) IsActive() bool     { return i.isActive }

// Bookable reports whether new stays may be admitted for this room.
// Both the instance and its type must be active.
func (i *Instance) Bookable() bool {
	return i.isActive && i.roomType.IsActive()
}

package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-booking-api/internal/pkg/clock"
)

var (
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrPastCheckIn      = errors.New("check-in date cannot be in the past")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrMissingContact   = errors.New("guest contact is incomplete")
	ErrNegativeAmount   = errors.New("amount cannot be negative")
)

// StayRange is a half-open date interval [checkIn, checkOut): the guest
// occupies the nights checkIn .. checkOut-1. Both endpoints are
// date-only (midnight); the exclusive checkout day is free for the next
// guest's check-in.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	checkIn = clock.Midnight(checkIn)
	checkOut = clock.Midnight(checkOut)

	if !checkOut.After(checkIn) {
		return StayRange{}, ErrInvalidDateRange
	}

	return StayRange{checkIn: checkIn, checkOut: checkOut}, nil
}

func (s StayRange) CheckIn() time.Time  { return s.checkIn }
func (s StayRange) CheckOut() time.Time { return s.checkOut }

// Nights is the calendar-day difference, never wall-clock hours, so a
// late checkout cannot shift the night count.
func (s StayRange) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// Overlaps implements the standard half-open interval test:
// [a,b) and [c,d) intersect iff a < d and c < b. Adjacent stays
// (checkout day == next check-in day) do not overlap.
func (s StayRange) Overlaps(other StayRange) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

// StartsBefore reports whether check-in falls on an earlier calendar
// day than the given day. Year/month/day are compared directly, so the
// locations of the two values cannot shift the boundary.
func (s StayRange) StartsBefore(day time.Time) bool {
	return beforeDay(s.checkIn, day)
}

func (s StayRange) String() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format(time.DateOnly), s.checkOut.Format(time.DateOnly))
}

// ValidateCheckIn rejects check-in days before today. Date-only, like
// StartsBefore: a stay starting today is admissible at any hour.
func ValidateCheckIn(checkIn, today time.Time) error {
	if beforeDay(checkIn, today) {
		return ErrPastCheckIn
	}
	return nil
}

func beforeDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	if ya != yb {
		return ya < yb
	}
	if ma != mb {
		return ma < mb
	}
	return da < db
}

// Money is an integer amount of currency cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) MulNights(nights int) Money {
	return Money{cents: m.cents * int64(nights)}
}

// GuestContact is the contact bundle carried on every booking, required
// for both guest-originated and staff-originated stays.
type GuestContact struct {
	firstName string
	lastName  string
	email     string
	phone     string
}

func NewGuestContact(firstName, lastName, email, phone string) (GuestContact, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if firstName == "" || lastName == "" || email == "" || phone == "" {
		return GuestContact{}, ErrMissingContact
	}

	return GuestContact{
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
	}, nil
}

func (g GuestContact) FirstName() string { return g.firstName }
func (g GuestContact) LastName() string  { return g.lastName }
func (g GuestContact) Email() string     { return g.email }
func (g GuestContact) Phone() string     { return g.phone }

func (g GuestContact) FullName() string {
	return g.firstName + " " + g.lastName
}

type SpecialRequests struct {
	value string
}

func NewSpecialRequests(value string) SpecialRequests {
	return SpecialRequests{value: strings.TrimSpace(value)}
}

func (r SpecialRequests) String() string { return r.value }
func (r SpecialRequests) IsEmpty() bool  { return r.value == "" }

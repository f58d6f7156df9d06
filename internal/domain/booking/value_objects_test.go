//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, checkIn, checkOut time.Time) booking.StayRange {
	t.Helper()
	stay, err := booking.NewStayRange(checkIn, checkOut)
	require.NoError(t, err)
	return stay
}

func TestStayRange(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		stay, err := booking.NewStayRange(day(10), day(13))
		require.NoError(t, err)

		assert.Equal(t, day(10), stay.CheckIn())
		assert.Equal(t, day(13), stay.CheckOut())
		assert.Equal(t, 3, stay.Nights())
	})

	t.Run("truncates wall-clock time to midnight", func(t *testing.T) {
		lateArrival := day(10).Add(23*time.Hour + 45*time.Minute)
		earlyCheckout := day(13).Add(6 * time.Hour)

		stay, err := booking.NewStayRange(lateArrival, earlyCheckout)
		require.NoError(t, err)

		assert.Equal(t, day(10), stay.CheckIn())
		assert.Equal(t, day(13), stay.CheckOut())
		assert.Equal(t, 3, stay.Nights())
	})

	t.Run("rejects inverted and empty ranges", func(t *testing.T) {
		cases := []struct {
			name     string
			checkIn  time.Time
			checkOut time.Time
		}{
			{name: "check-out before check-in", checkIn: day(13), checkOut: day(10)},
			{name: "same-day stay", checkIn: day(10), checkOut: day(10)},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := booking.NewStayRange(c.checkIn, c.checkOut)
				require.ErrorIs(t, err, booking.ErrInvalidDateRange)
			})
		}
	})

	t.Run("single night is the minimum stay", func(t *testing.T) {
		stay, err := booking.NewStayRange(day(10), day(11))
		require.NoError(t, err)
		assert.Equal(t, 1, stay.Nights())
	})
}

func TestStayRangeOverlaps(t *testing.T) {
	base := mustStay(t, day(10), day(13))

	cases := []struct {
		name     string
		other    booking.StayRange
		overlaps bool
	}{
		{name: "identical range", other: mustStay(t, day(10), day(13)), overlaps: true},
		{name: "contained range", other: mustStay(t, day(11), day(12)), overlaps: true},
		{name: "containing range", other: mustStay(t, day(9), day(14)), overlaps: true},
		{name: "overlapping start", other: mustStay(t, day(8), day(11)), overlaps: true},
		{name: "overlapping end", other: mustStay(t, day(12), day(15)), overlaps: true},
		{name: "single shared night", other: mustStay(t, day(12), day(13)), overlaps: true},
		{name: "adjacent before (their checkout is our check-in)", other: mustStay(t, day(7), day(10)), overlaps: false},
		{name: "adjacent after (our checkout is their check-in)", other: mustStay(t, day(13), day(16)), overlaps: false},
		{name: "fully before", other: mustStay(t, day(5), day(8)), overlaps: false},
		{name: "fully after", other: mustStay(t, day(15), day(18)), overlaps: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, base.Overlaps(c.other))
			// Overlap is symmetric.
			assert.Equal(t, c.overlaps, c.other.Overlaps(base))
		})
	}
}

func TestMoney(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		m, err := booking.NewMoney(15000)
		require.NoError(t, err)
		assert.Equal(t, int64(15000), m.Cents())
	})

	t.Run("zero is a valid amount", func(t *testing.T) {
		m, err := booking.NewMoney(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Cents())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := booking.NewMoney(-1)
		require.ErrorIs(t, err, booking.ErrNegativeAmount)
	})

	t.Run("multiplies rate by nights", func(t *testing.T) {
		rate, err := booking.NewMoney(15000)
		require.NoError(t, err)
		assert.Equal(t, int64(45000), rate.MulNights(3).Cents())
	})
}

func TestGuestContact(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		contact, err := booking.NewGuestContact("Maria", "Silva", "maria.silva@example.com", "+351912345678")
		require.NoError(t, err)

		assert.Equal(t, "Maria", contact.FirstName())
		assert.Equal(t, "Maria Silva", contact.FullName())
		assert.Equal(t, "maria.silva@example.com", contact.Email())
		assert.Equal(t, "+351912345678", contact.Phone())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		contact, err := booking.NewGuestContact("  Maria ", " Silva  ", " maria@example.com ", " +351912345678 ")
		require.NoError(t, err)

		assert.Equal(t, "Maria", contact.FirstName())
		assert.Equal(t, "Silva", contact.LastName())
		assert.Equal(t, "maria@example.com", contact.Email())
	})

	t.Run("rejects incomplete contacts", func(t *testing.T) {
		cases := []struct {
			name                              string
			firstName, lastName, email, phone string
		}{
			{name: "missing first name", lastName: "Silva", email: "m@example.com", phone: "+351912345678"},
			{name: "missing last name", firstName: "Maria", email: "m@example.com", phone: "+351912345678"},
			{name: "missing email", firstName: "Maria", lastName: "Silva", phone: "+351912345678"},
			{name: "missing phone", firstName: "Maria", lastName: "Silva", email: "m@example.com"},
			{name: "whitespace only", firstName: "  ", lastName: " ", email: " ", phone: " "},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := booking.NewGuestContact(c.firstName, c.lastName, c.email, c.phone)
				require.ErrorIs(t, err, booking.ErrMissingContact)
			})
		}
	})
}

func TestStatus(t *testing.T) {
	t.Run("parses known statuses", func(t *testing.T) {
		for _, raw := range []string{"pending", "confirmed", "cancelled", "completed"} {
			status, err := booking.NewStatus(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, status.String())
		}
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		_, err := booking.NewStatus("archived")
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
	})

	t.Run("only pending and confirmed occupy the room", func(t *testing.T) {
		assert.True(t, booking.StatusPending.Occupying())
		assert.True(t, booking.StatusConfirmed.Occupying())
		assert.False(t, booking.StatusCancelled.Occupying())
		assert.False(t, booking.StatusCompleted.Occupying())
	})

	t.Run("lifecycle transitions", func(t *testing.T) {
		cases := []struct {
			from    booking.Status
			to      booking.Status
			allowed bool
		}{
			{booking.StatusPending, booking.StatusConfirmed, true},
			{booking.StatusPending, booking.StatusCancelled, true},
			{booking.StatusPending, booking.StatusCompleted, false},
			{booking.StatusConfirmed, booking.StatusCancelled, true},
			{booking.StatusConfirmed, booking.StatusCompleted, true},
			{booking.StatusConfirmed, booking.StatusPending, false},
			{booking.StatusCancelled, booking.StatusConfirmed, false},
			{booking.StatusCancelled, booking.StatusPending, false},
			{booking.StatusCompleted, booking.StatusCancelled, false},
			{booking.StatusCompleted, booking.StatusConfirmed, false},
		}

		for _, c := range cases {
			t.Run(c.from.String()+" to "+c.to.String(), func(t *testing.T) {
				assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to))
			})
		}
	})
}

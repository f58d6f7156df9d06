//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/shared"
	"hotel-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory UoW covering the write path. The fakes record calls so
// tests can assert what reached storage, and in which order.

type fakeReads struct {
	snapshot     *shared.RoomInstanceSnapshot
	snapshotErr  error
	available    bool
	availableErr error
	bookingSnap  *shared.BookingSnapshot
	bookingErr   error

	availabilityChecks int
}

func (r *fakeReads) RoomInstanceByID(_ context.Context, _ uuid.UUID) (*shared.RoomInstanceSnapshot, error) {
	return r.snapshot, r.snapshotErr
}

func (r *fakeReads) IsRoomInstanceAvailable(_ context.Context, _ uuid.UUID, _ booking.StayRange) (bool, error) {
	r.availabilityChecks++
	return r.available, r.availableErr
}

func (r *fakeReads) BookingByID(_ context.Context, _ uuid.UUID) (*shared.BookingSnapshot, error) {
	return r.bookingSnap, r.bookingErr
}

type fakeBookingRepo struct {
	createErr error
	created   []*booking.Booking
	updateErr error
	updated   []booking.Status
}

func (r *fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = append(r.created, b)
	return b.ID(), nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, _ db.DBTX, _ uuid.UUID, status booking.Status) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = append(r.updated, status)
	return nil
}

type fakeNotificationRepo struct {
	recordErr error
	attempts  []shared.NotificationAttempt
}

func (r *fakeNotificationRepo) RecordAttempt(_ context.Context, _ db.DBTX, attempt shared.NotificationAttempt) error {
	if r.recordErr != nil {
		return r.recordErr
	}
	r.attempts = append(r.attempts, attempt)
	return nil
}

type fakeUserRepo struct{}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}

type fakeTx struct {
	reads         *fakeReads
	bookings      *fakeBookingRepo
	notifications *fakeNotificationRepo
}

func (t *fakeTx) Bookings() shared.BookingRepository           { return t.bookings }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t.notifications }
func (t *fakeTx) Users() shared.UserRepository                 { return &fakeUserRepo{} }
func (t *fakeTx) Reads() shared.CommandReads                   { return t.reads }
func (t *fakeTx) DB() db.DBTX                                  { return nil }

type fakeUow struct {
	tx *fakeTx
}

func (u *fakeUow) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUow) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUow) CommandReads() shared.CommandReads { return u.tx.reads }

type fakeDispatcher struct {
	channel string
	enabled bool
	sendErr error
	sends   int
}

func (d *fakeDispatcher) Channel() string { return d.channel }
func (d *fakeDispatcher) Enabled() bool   { return d.enabled }

func (d *fakeDispatcher) Send(_ context.Context, _ commands.BookingMessage) error {
	d.sends++
	return d.sendErr
}

type admissionFixture struct {
	uow      *fakeUow
	email    *fakeDispatcher
	whatsapp *fakeDispatcher
	commands commands.BookingCommands
}

func newAdmissionFixture(b *builder.BookingBuilder) *admissionFixture {
	tx := &fakeTx{
		reads: &fakeReads{
			snapshot:  b.BuildSnapshot(),
			available: true,
		},
		bookings:      &fakeBookingRepo{},
		notifications: &fakeNotificationRepo{},
	}
	uow := &fakeUow{tx: tx}
	email := &fakeDispatcher{channel: commands.ChannelEmail, enabled: true}
	whatsapp := &fakeDispatcher{channel: commands.ChannelWhatsApp, enabled: true}

	return &admissionFixture{
		uow:      uow,
		email:    email,
		whatsapp: whatsapp,
		commands: commands.NewBookingCommands(uow, clock.NewMockClock(builder.BaseDay), []commands.Dispatcher{email, whatsapp}),
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success: admits, freezes the price, notifies both channels", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newAdmissionFixture(b)

		result, err := f.commands.Create(ctx, b.BuildCreateInput())
		require.NoError(t, err)

		assert.Equal(t, "confirmed", result.Status)
		assert.Equal(t, 3, result.Nights)
		assert.Equal(t, int64(45000), result.TotalAmountCents)
		assert.True(t, result.EmailSent)
		assert.True(t, result.WhatsAppSent)

		require.Len(t, f.uow.tx.bookings.created, 1)
		assert.Equal(t, result.BookingID, f.uow.tx.bookings.created[0].ID())
		assert.Equal(t, 1, f.email.sends)
		assert.Equal(t, 1, f.whatsapp.sends)

		require.Len(t, f.uow.tx.notifications.attempts, 2)
		for _, a := range f.uow.tx.notifications.attempts {
			assert.Equal(t, "sent", a.Status)
			assert.Equal(t, result.BookingID, a.BookingID)
		}
	})

	t.Run("validation failures never reach storage", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.BookingBuilder)
			errIs  error
		}{
			{
				name:   "missing contact",
				mutate: func(b *builder.BookingBuilder) { b.Email = "" },
				errIs:  commands.ErrInvalidRequest,
			},
			{
				name: "inverted date range",
				mutate: func(b *builder.BookingBuilder) {
					b.CheckInDate = builder.BaseDay.AddDate(0, 0, 12)
					b.CheckOutDate = builder.BaseDay.AddDate(0, 0, 9)
				},
				errIs: booking.ErrInvalidDateRange,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				b := builder.NewBookingBuilder().With(c.mutate)
				f := newAdmissionFixture(b)

				_, err := f.commands.Create(ctx, b.BuildCreateInput())
				require.ErrorIs(t, err, c.errIs)
				assert.Empty(t, f.uow.tx.bookings.created)
				assert.Equal(t, 0, f.email.sends)
			})
		}
	})

	t.Run("past check-in is rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.CheckInDate = builder.BaseDay.AddDate(0, 0, -1)
			b.CheckOutDate = builder.BaseDay.AddDate(0, 0, 2)
		})
		f := newAdmissionFixture(b)

		_, err := f.commands.Create(ctx, b.BuildCreateInput())
		require.ErrorIs(t, err, booking.ErrPastCheckIn)
		assert.Empty(t, f.uow.tx.bookings.created)
	})

	t.Run("past check-in wins over an inverted range", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.CheckInDate = builder.BaseDay.AddDate(0, 0, -1)
			b.CheckOutDate = builder.BaseDay.AddDate(0, 0, -3)
		})
		f := newAdmissionFixture(b)

		_, err := f.commands.Create(ctx, b.BuildCreateInput())
		require.ErrorIs(t, err, booking.ErrPastCheckIn)
	})

	t.Run("past check-in wins over an unknown room", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.CheckInDate = builder.BaseDay.AddDate(0, 0, -1)
			b.CheckOutDate = builder.BaseDay.AddDate(0, 0, 2)
		})
		f := newAdmissionFixture(b)
		f.uow.tx.reads.snapshot = nil
		f.uow.tx.reads.snapshotErr = infra.WrapRepoErr("room instance not found", nil, infra.KindNotFound)

		_, err := f.commands.Create(ctx, b.BuildCreateInput())
		require.ErrorIs(t, err, booking.ErrPastCheckIn)
		assert.Equal(t, 0, f.uow.tx.reads.availabilityChecks)
	})

	t.Run("guest count over capacity carries the limit", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Guests = 5
		})
		f := newAdmissionFixture(b)

		_, err := f.commands.Create(ctx, b.BuildCreateInput())

		var capacityErr *booking.CapacityError
		require.ErrorAs(t, err, &capacityErr)
		assert.Equal(t, 2, capacityErr.MaxGuests)
	})

	t.Run("unknown room maps to ErrRoomNotFound", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newAdmissionFixture(b)
		f.uow.tx.reads.snapshot = nil
		f.uow.tx.reads.snapshotErr = infra.WrapRepoErr("room instance not found", nil, infra.KindNotFound)

		_, err := f.commands.Create(ctx, b.BuildCreateInput())
		require.ErrorIs(t, err, commands.ErrRoomNotFound)
	})

	t.Run("deactivated room behaves as missing", func(t *testing.T) {
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.InstanceActive = false
		})
		f := newAdmissionFixture(b)

		_, err := f.commands.Create(ctx, b.BuildCreateInput())
		require.ErrorIs(t, err, commands.ErrRoomNotFound)
	})

	t.Run("occupied range maps to ErrRoomUnavailable and skips the insert", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newAdmissionFixture(b)
		f.uow.tx.reads.available = false

		_, err := f.commands.Create(ctx, b.BuildCreateInput())
		require.ErrorIs(t, err, commands.ErrRoomUnavailable)
		assert.Empty(t, f.uow.tx.bookings.created)
		assert.Equal(t, 0, f.email.sends)
	})

	t.Run("oracle failure is never treated as available", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newAdmissionFixture(b)
		f.uow.tx.reads.available = true
		f.uow.tx.reads.availableErr = errors.New("connection reset")

		_, err := f.commands.Create(ctx, b.BuildCreateInput())
		require.ErrorIs(t, err, commands.ErrAvailabilityCheckFailed)
		assert.Empty(t, f.uow.tx.bookings.created)
	})

	t.Run("lost race surfaces as ErrRoomUnavailable", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newAdmissionFixture(b)
		f.uow.tx.bookings.createErr = infra.WrapRepoErr("overlapping booking", nil, infra.KindConflict)

		_, err := f.commands.Create(ctx, b.BuildCreateInput())
		require.ErrorIs(t, err, commands.ErrRoomUnavailable)
	})

	t.Run("notification failures never fail the booking", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newAdmissionFixture(b)
		f.email.sendErr = errors.New("provider timeout")
		f.whatsapp.enabled = false

		result, err := f.commands.Create(ctx, b.BuildCreateInput())
		require.NoError(t, err)

		assert.False(t, result.EmailSent)
		assert.False(t, result.WhatsAppSent)
		require.Len(t, f.uow.tx.bookings.created, 1)

		byChannel := map[string]shared.NotificationAttempt{}
		for _, a := range f.uow.tx.notifications.attempts {
			byChannel[a.Channel] = a
		}
		require.Len(t, byChannel, 2)
		assert.Equal(t, "failed", byChannel[commands.ChannelEmail].Status)
		require.NotNil(t, byChannel[commands.ChannelEmail].Error)
		assert.Equal(t, "skipped", byChannel[commands.ChannelWhatsApp].Status)
		assert.Equal(t, 0, f.whatsapp.sends)
	})

	t.Run("ledger write failure is swallowed", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		f := newAdmissionFixture(b)
		f.uow.tx.notifications.recordErr = errors.New("ledger unavailable")

		result, err := f.commands.Create(ctx, b.BuildCreateInput())
		require.NoError(t, err)
		assert.True(t, result.EmailSent)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	newFixture := func(status string) *admissionFixture {
		b := builder.NewBookingBuilder()
		f := newAdmissionFixture(b)
		f.uow.tx.reads.bookingSnap = &shared.BookingSnapshot{
			ID:             bookingID,
			RoomInstanceID: b.RoomInstanceID,
			Status:         status,
		}
		return f
	}

	t.Run("success: confirmed to cancelled", func(t *testing.T) {
		f := newFixture("confirmed")

		require.NoError(t, f.commands.UpdateStatus(ctx, bookingID, "cancelled"))
		require.Len(t, f.uow.tx.bookings.updated, 1)
		assert.Equal(t, booking.StatusCancelled, f.uow.tx.bookings.updated[0])
	})

	t.Run("error: unknown status", func(t *testing.T) {
		f := newFixture("confirmed")

		err := f.commands.UpdateStatus(ctx, bookingID, "archived")
		require.ErrorIs(t, err, booking.ErrInvalidStatus)
		assert.Empty(t, f.uow.tx.bookings.updated)
	})

	t.Run("error: booking not found", func(t *testing.T) {
		f := newFixture("confirmed")
		f.uow.tx.reads.bookingSnap = nil
		f.uow.tx.reads.bookingErr = infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)

		err := f.commands.UpdateStatus(ctx, bookingID, "cancelled")
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("error: rejected transition leaves storage untouched", func(t *testing.T) {
		f := newFixture("cancelled")

		err := f.commands.UpdateStatus(ctx, bookingID, "confirmed")

		var transitionErr *booking.TransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, booking.StatusCancelled, transitionErr.From)
		assert.Empty(t, f.uow.tx.bookings.updated)
	})
}

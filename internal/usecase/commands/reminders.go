package commands

import (
	"context"
	"log/slog"

	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"
)

var ErrReminderSweep = errs.New("failed to run reminder sweep")

// ReminderResult summarizes one sweep for the cron response.
type ReminderResult struct {
	BookingsFound int
	EmailsSent    int
	MessagesSent  int
}

type ReminderCommands interface {
	SendCheckInReminders(ctx context.Context) (*ReminderResult, error)
}

type reminderUseCaseImpl struct {
	notifyRunner
	bookings queries.BookingReadStore
	clock    clock.Clock
}

func NewReminderCommands(bookings queries.BookingReadStore, clk clock.Clock, uow shared.UnitOfWork, dispatchers []Dispatcher) ReminderCommands {
	return &reminderUseCaseImpl{
		notifyRunner: notifyRunner{uow: uow, dispatchers: dispatchers},
		bookings:     bookings,
		clock:        clk,
	}
}

// SendCheckInReminders notifies every confirmed booking whose stay
// starts tomorrow. Per-booking failures are recorded and skipped; one
// broken phone number must not stall the rest of the sweep.
func (uc *reminderUseCaseImpl) SendCheckInReminders(ctx context.Context) (*ReminderResult, error) {
	tomorrow := uc.clock.Today().AddDate(0, 0, 1)

	views, err := uc.bookings.FindCheckingInOn(ctx, tomorrow)
	if err != nil {
		return nil, errs.Mark(err, ErrReminderSweep)
	}

	result := &ReminderResult{BookingsFound: len(views)}

	for _, v := range views {
		msg := BookingMessage{
			Kind:             MessageReminder,
			BookingID:        v.ID,
			GuestFirstName:   v.GuestFirstName,
			GuestLastName:    v.GuestLastName,
			GuestEmail:       v.GuestEmail,
			GuestPhone:       v.GuestPhone,
			RoomTypeName:     v.RoomTypeName,
			RoomNumber:       v.RoomNumber,
			CheckInDate:      v.CheckInDate,
			CheckOutDate:     v.CheckOutDate,
			Nights:           v.Nights,
			Guests:           v.Guests,
			TotalAmountCents: v.TotalAmountCents,
		}

		outcomes := uc.dispatchAll(ctx, msg)
		for _, o := range outcomes {
			if !o.sent {
				continue
			}
			switch o.attempt.Channel {
			case ChannelEmail:
				result.EmailsSent++
			case ChannelWhatsApp:
				result.MessagesSent++
			}
		}
		uc.recordAttempts(ctx, outcomes)
	}

	slog.Info("check-in reminder sweep finished",
		"check_in_date", tomorrow.Format("2006-01-02"),
		"bookings", result.BookingsFound,
		"emails_sent", result.EmailsSent,
		"messages_sent", result.MessagesSent)

	return result, nil
}

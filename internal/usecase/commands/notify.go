package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-booking-api/internal/usecase/shared"
)

const (
	ChannelEmail    = "email"
	ChannelWhatsApp = "whatsapp"
)

const dispatchTimeout = 10 * time.Second

type dispatchOutcome struct {
	attempt shared.NotificationAttempt
	sent    bool
}

// notifyRunner is the shared fan-out used by confirmations and
// reminders: send on every channel, collect per-channel outcomes,
// persist them to the attempts ledger.
type notifyRunner struct {
	uow         shared.UnitOfWork
	dispatchers []Dispatcher
}

// dispatchAll fans out to every channel concurrently and waits for all
// of them. The detached context keeps an aborted HTTP request from
// cancelling sends for an already-committed booking.
func (r *notifyRunner) dispatchAll(ctx context.Context, msg BookingMessage) []dispatchOutcome {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), dispatchTimeout)
	defer cancel()

	outcomes := make([]dispatchOutcome, len(r.dispatchers))

	var wg sync.WaitGroup
	for i, d := range r.dispatchers {
		recipient := msg.GuestEmail
		if d.Channel() == ChannelWhatsApp {
			recipient = msg.GuestPhone
		}

		attempt := shared.NotificationAttempt{
			BookingID: msg.BookingID,
			Channel:   d.Channel(),
			Recipient: recipient,
		}

		if !d.Enabled() {
			attempt.Status = "skipped"
			outcomes[i] = dispatchOutcome{attempt: attempt}
			continue
		}

		wg.Add(1)
		go func(i int, d Dispatcher, attempt shared.NotificationAttempt) {
			defer wg.Done()
			if err := d.Send(sendCtx, msg); err != nil {
				errMsg := err.Error()
				attempt.Status = "failed"
				attempt.Error = &errMsg
				slog.Warn("notification dispatch failed",
					"channel", d.Channel(),
					"booking_id", msg.BookingID.String(),
					"error", errMsg)
			} else {
				attempt.Status = "sent"
			}
			outcomes[i] = dispatchOutcome{attempt: attempt, sent: attempt.Status == "sent"}
		}(i, d, attempt)
	}
	wg.Wait()

	return outcomes
}

// recordAttempts appends delivery outcomes to the ledger. A ledger
// write failure is logged and swallowed: the booking is already
// committed and notification bookkeeping must not disturb it.
func (r *notifyRunner) recordAttempts(ctx context.Context, outcomes []dispatchOutcome) {
	if len(outcomes) == 0 {
		return
	}

	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	err := r.uow.Within(recordCtx, func(ctx context.Context, tx shared.Tx) error {
		for _, o := range outcomes {
			if err := tx.Notifications().RecordAttempt(ctx, tx.DB(), o.attempt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		slog.Warn("failed to record notification attempts", "error", err.Error())
	}
}

package commands

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// UpdateStatus moves a booking through its lifecycle. The read and the
// write share one transaction so two staff members racing on the same
// booking cannot both win: the second update sees the first one's
// status and fails the transition check.
func (uc *bookingUseCaseImpl) UpdateStatus(ctx context.Context, bookingID uuid.UUID, next string) error {
	nextStatus, err := booking.NewStatus(next)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return errs.Mark(err, ErrAdmissionFailed)
		}

		current, err := booking.NewStatus(snap.Status)
		if err != nil {
			return err
		}
		if !current.CanTransitionTo(nextStatus) {
			return &booking.TransitionError{From: current, To: nextStatus}
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, nextStatus); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return errs.Mark(err, ErrAdmissionFailed)
		}

		return nil
	})
}

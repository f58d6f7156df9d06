package writerepo

import (
	"context"

	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/shared"
)

type NotificationRepository struct{}

func NewNotificationRepository() shared.NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) RecordAttempt(ctx context.Context, dbtx db.DBTX, attempt shared.NotificationAttempt) error {
	const query = `
		INSERT INTO notification_attempts (booking_id, channel, recipient, status, error)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := dbtx.Exec(ctx, query,
		pgconv.UUIDToPgtype(attempt.BookingID),
		attempt.Channel,
		attempt.Recipient,
		attempt.Status,
		pgconv.StringPtrToPgtype(attempt.Error),
	)
	if err != nil {
		return classifyWriteErr("failed to record notification attempt", err)
	}

	return nil
}

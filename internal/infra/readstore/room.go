package readstore

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/pkg/pgconv"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomReadStore struct {
	dbtx db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{dbtx: dbtx}
}

func (s *RoomReadStore) InstanceByID(ctx context.Context, id uuid.UUID) (*shared.RoomInstanceSnapshot, error) {
	const query = `
		SELECT ri.id, ri.room_number, ri.floor, ri.is_active,
		       r.id, r.name, r.max_guests, r.price_per_night_cents, r.is_active
		FROM room_instances ri
		JOIN rooms r ON r.id = ri.room_id
		WHERE ri.id = $1
	`

	var (
		instanceID pgtype.UUID
		roomTypeID pgtype.UUID
		snap       shared.RoomInstanceSnapshot
	)

	err := s.dbtx.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(
		&instanceID,
		&snap.RoomNumber,
		&snap.Floor,
		&snap.IsActive,
		&roomTypeID,
		&snap.RoomTypeName,
		&snap.MaxGuests,
		&snap.PricePerNightCents,
		&snap.RoomTypeActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room instance not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room instance", err)
	}

	snap.ID = uuid.UUID(instanceID.Bytes)
	snap.RoomTypeID = uuid.UUID(roomTypeID.Bytes)

	return &snap, nil
}

// AvailableInstances reuses the oracle's overlap predicate as an
// anti-join so one query answers "what can I book for these dates".
func (s *RoomReadStore) AvailableInstances(ctx context.Context, stay booking.StayRange, guests int) ([]queries.AvailableRoomView, error) {
	const query = `
		SELECT ri.id, ri.room_number, ri.floor,
		       r.id, r.name, r.max_guests, r.price_per_night_cents
		FROM room_instances ri
		JOIN rooms r ON r.id = ri.room_id
		WHERE ri.is_active
		  AND r.is_active
		  AND r.max_guests >= $1
		  AND NOT EXISTS (
			SELECT 1
			FROM bookings b
			WHERE b.room_instance_id = ri.id
			  AND b.status IN ('pending', 'confirmed')
			  AND b.check_in_date < $3
			  AND $2 < b.check_out_date
		  )
		ORDER BY r.price_per_night_cents, ri.room_number
	`

	rows, err := s.dbtx.Query(ctx, query,
		guests,
		pgconv.DateToPgtype(stay.CheckIn()),
		pgconv.DateToPgtype(stay.CheckOut()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search available rooms", err)
	}
	defer rows.Close()

	var views []queries.AvailableRoomView
	for rows.Next() {
		var (
			instanceID pgtype.UUID
			roomTypeID pgtype.UUID
			view       queries.AvailableRoomView
		)
		err := rows.Scan(
			&instanceID,
			&view.RoomNumber,
			&view.Floor,
			&roomTypeID,
			&view.RoomTypeName,
			&view.MaxGuests,
			&view.PricePerNightCents,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		view.RoomInstanceID = uuid.UUID(instanceID.Bytes)
		view.RoomTypeID = uuid.UUID(roomTypeID.Bytes)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}

	return views, nil
}

package components

import (
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/infra/readstore"
	"hotel-booking-api/internal/infra/uow"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(commands.UserFinder)),
		),
	),
)

// Pool-backed stores serve the query side; command-side reads go
// through the unit of work so they observe the transaction.
func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

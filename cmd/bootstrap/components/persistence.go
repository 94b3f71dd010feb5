package components

import (
	"coworking-booking/internal/infra/db"
	"coworking-booking/internal/infra/readstore"
	"coworking-booking/internal/infra/uow"
	"coworking-booking/internal/usecase/queries"
	"coworking-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewSpaceReadStore,
			fx.As(new(queries.SpaceReadStore)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

// Read stores run against the pool; write repositories are bound to an open
// transaction by the unit of work.
func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

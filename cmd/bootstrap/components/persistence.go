package components

import (
	"labforge/internal/infra/db"
	"labforge/internal/infra/readstore"
	"labforge/internal/infra/uow"
	"labforge/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewLabReadStore,
			fx.As(new(shared.LabReadStore)),
		),
		fx.Annotate(
			readstore.NewPriceReadStore,
			fx.As(new(shared.PriceReadStore)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(shared.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewEntitlementReadStore,
			fx.As(new(shared.EntitlementReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork opens its own transactions, so it takes the pool rather
		// than the shared DBTX.
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

package components

import (
	"log/slog"

	"car-rental-core/internal/infra/memstore"
	"car-rental-core/internal/infra/pgquery"
	"car-rental-core/internal/infra/uow"
	"car-rental-core/internal/pkg/config"
	"car-rental-core/internal/pkg/errs"
	"car-rental-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		pgquery.New,
		NewUnitOfWork,
	),
)

// NewUnitOfWork picks the store named by STORE_BACKEND. Repositories and
// read stores are created by the unit of work, per transaction.
func NewUnitOfWork(cfg config.Config, pool *pgxpool.Pool, q *pgquery.Queries) (shared.UnitOfWork, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		if pool == nil {
			return nil, errs.New("postgres backend selected but no pool was opened")
		}
		return uow.NewPostgresUoW(pool, q), nil
	case config.StoreBackendMemory:
		slog.Warn("Using in-memory store; data is lost on restart")
		s := memstore.NewStore()
		memstore.SeedDemo(s)
		return s, nil
	default:
		return nil, errs.Newf("unsupported store backend %q", cfg.Store.Backend)
	}
}

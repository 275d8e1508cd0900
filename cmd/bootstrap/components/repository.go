package components

import (
	"context"
	"fmt"

	"shootbook/internal/infra/db"
	"shootbook/internal/infra/memory"
	"shootbook/internal/infra/postgres"
	"shootbook/internal/pkg/config"
	"shootbook/internal/usecase/commands"
	"shootbook/internal/usecase/queries"

	"go.uber.org/fx"
)

// Ledger is what every backend must satisfy: the write-side port plus the
// read-side port over the same store.
type Ledger interface {
	commands.LedgerRepository
	queries.ReservationReadStore
}

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewLedger,
			fx.As(new(commands.LedgerRepository)),
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

func NewLedger(lc fx.Lifecycle, cfg config.Config) (Ledger, error) {
	switch cfg.Store.Driver {
	case "memory":
		return memory.NewLedger(), nil

	case "postgres":
		ctx := context.Background()
		pool, cleanup, err := db.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			cleanup()
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		return postgres.NewLedger(pool), nil

	default:
		return nil, fmt.Errorf("unknown store driver: %q", cfg.Store.Driver)
	}
}

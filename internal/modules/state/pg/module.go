package pg

import (
	"breakout_bot/internal/modules/state"
	"breakout_bot/pkg/db"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("state",
		fx.Provide(
			func(manager *db.PgTxManager) state.Store {
				if manager == nil {
					return state.NewMemory()
				}
				return New(manager)
			},
		),
	)
}

package strategy

import (
	"breakout_bot/internal/modules/strategy/service"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("strategy",
		fx.Provide(
			service.NewRegistry, // *service.Registry
			service.NewEngine,   // service.Engine (активная из конфига)
		),
	)
}

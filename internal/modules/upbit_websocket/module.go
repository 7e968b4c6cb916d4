package upbit_websocket

import (
	"context"

	"breakout_bot/internal/models"
	"breakout_bot/internal/modules/upbit_websocket/service"

	"go.uber.org/fx"
)

func newTickChan() chan models.Tick {
	return make(chan models.Tick, 4096)
}

func Module() fx.Option {
	return fx.Module("upbit_websocket",
		fx.Provide(
			newTickChan, // chan models.Tick
			service.NewClient,
		),
		fx.Invoke(func(lc fx.Lifecycle, c *service.Client, ticks chan models.Tick, ctx context.Context) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					c.Start(ctx, ticks)
					return nil
				},
			})
		}),
	)
}

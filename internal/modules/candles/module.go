package candles

import (
	"context"

	"breakout_bot/internal/modules/candles/service"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("candles",
		fx.Provide(
			service.New, // *service.Refresher
		),
		fx.Invoke(func(lc fx.Lifecycle, r *service.Refresher, ctx context.Context) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					go r.Run(ctx)
					return nil
				},
			})
		}),
	)
}

package trader

import (
	"context"

	"breakout_bot/internal/models"
	"breakout_bot/internal/modules/config"
	"breakout_bot/internal/modules/state"
	strategy "breakout_bot/internal/modules/strategy/service"
	"breakout_bot/internal/modules/trader/service"
	"breakout_bot/internal/notify"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("trader",
		fx.Provide(
			func(
				cfg *config.Config,
				eng strategy.Engine,
				store state.Store,
				gw service.OrderGateway,
				n notify.Notifier,
			) *service.Trader {
				return service.New(cfg, eng, store, gw, n)
			},
		),
		fx.Invoke(func(lc fx.Lifecycle, t *service.Trader, ticks chan models.Tick, ctx context.Context) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					// восстановление кулдаунов из персистентного состояния
					if err := t.Start(ctx); err != nil {
						return err
					}
					go func() {
						for {
							select {
							case <-ctx.Done():
								return
							case tick := <-ticks:
								t.Dispatch(tick)
							}
						}
					}()
					return nil
				},
				OnStop: func(_ context.Context) error {
					t.Stop()
					return nil
				},
			})
		}),
	)
}

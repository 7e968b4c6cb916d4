package upbit

import (
	candles "breakout_bot/internal/modules/candles/service"
	"breakout_bot/internal/modules/config"
	trader "breakout_bot/internal/modules/trader/service"
	"breakout_bot/internal/modules/upbit_client/service"
	ws "breakout_bot/internal/modules/upbit_websocket/service"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("upbit_client",
		fx.Provide(
			service.NewClient, // *service.Client
			func(c *service.Client) candles.MarketClient { return c },
			func(c *service.Client) ws.MarketLister { return c },
			// DRY_RUN подменяет только ордера; маркет-дата остаётся настоящей
			func(cfg *config.Config, c *service.Client) trader.OrderGateway {
				if cfg.DryRun {
					return service.NewPaper()
				}
				return c
			},
		),
	)
}

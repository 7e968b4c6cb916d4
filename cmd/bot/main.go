package main

import (
	"context"
	"log"

	"breakout_bot/internal/modules/candles"
	"breakout_bot/internal/modules/config"
	"breakout_bot/internal/modules/health"
	"breakout_bot/internal/modules/postgres"
	statepg "breakout_bot/internal/modules/state/pg"
	"breakout_bot/internal/modules/strategy"
	"breakout_bot/internal/modules/trader"
	upbit "breakout_bot/internal/modules/upbit_client"
	upbitws "breakout_bot/internal/modules/upbit_websocket"
	"breakout_bot/pkg/logger"
	"breakout_bot/pkg/tracing"

	telegram "breakout_bot/internal/modules/telegram_bot"

	"go.uber.org/fx"
)

func main() {
	if err := logger.Init("trade.log", "error.log"); err != nil {
		log.Fatal(err)
	}
	logger.SetServiceName("breakout-bot")
	tracing.SetServiceName("breakout-bot")

	app := fx.New(
		fx.Provide(
			func(lc fx.Lifecycle) context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				lc.Append(fx.Hook{
					OnStop: func(context.Context) error {
						cancel()
						return nil
					},
				})
				return ctx
			},
		),
		config.Module(),
		postgres.Module(),
		statepg.Module(),
		upbit.Module(),
		strategy.Module(),
		candles.Module(),
		trader.Module(),
		upbitws.Module(),
		telegram.Module(),
		health.Module(),
		fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config) error {
			if cfg.Jaeger.Host == "" {
				return nil
			}
			_, closeTracer, err := tracing.InitTracer(tracing.Config{
				Host: cfg.Jaeger.Host,
				Port: cfg.Jaeger.Port,
			})
			if err != nil {
				return err
			}
			lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					closeTracer()
					return nil
				},
			})
			return nil
		}),
	)
	app.Run()
}

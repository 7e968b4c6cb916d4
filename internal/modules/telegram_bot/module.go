package telegram

import (
	"context"

	"breakout_bot/internal/modules/config"
	"breakout_bot/internal/modules/state"
	"breakout_bot/internal/notify"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("telegram_bot",
		fx.Provide(
			func(cfg *config.Config, store state.Store) (notify.Notifier, error) {
				if cfg.Telegram.Token == "" {
					return notify.NewStdout(), nil
				}
				return notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID, store)
			},
		),
		fx.Invoke(func(lc fx.Lifecycle, n notify.Notifier, ctx context.Context) {
			tg, ok := n.(*notify.Telegram)
			if !ok {
				return
			}
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					return tg.Start(ctx)
				},
			})
		}),
	)
}

package service

import (
	"context"
	"errors"
	"time"

	"breakout_bot/internal/models"
	"breakout_bot/internal/modules/config"
	"breakout_bot/internal/modules/state"
	"breakout_bot/pkg/logger"
)

// MarketClient — кусок REST-клиента, нужный рефрешеру.
type MarketClient interface {
	ListMarkets(ctx context.Context, quote string, includeCaution bool) ([]models.Market, error)
	DailyCandles(ctx context.Context, symbol string, count int) ([]models.DayCandle, error)
}

// Refresher раз в интервал перечитывает вселенную символов и их дневные
// high/low. Запросы размазаны фиксированной задержкой на символ — это
// намеренный троттлинг под rate limit биржи, а не случайная латентность.
type Refresher struct {
	cfg    *config.Config
	client MarketClient
	store  state.Store

	now func() time.Time
}

func New(cfg *config.Config, client MarketClient, store state.Store) *Refresher {
	return &Refresher{
		cfg:    cfg,
		client: client,
		store:  store,
		now:    time.Now,
	}
}

func (r *Refresher) Run(ctx context.Context) {
	r.RefreshAll(ctx)

	ticker := time.NewTicker(r.cfg.RefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RefreshAll(ctx)
		}
	}
}

// RefreshAll — один полный цикл. Падение одного символа не трогает остальные:
// лог, и до следующего цикла.
func (r *Refresher) RefreshAll(ctx context.Context) {
	markets, err := r.client.ListMarkets(ctx, r.cfg.MarketQuote, r.cfg.IncludeCaution)
	if err != nil {
		logger.Error("[CANDLE] market list: %v", err)
		return
	}
	logger.Info("[CANDLE] refresh cycle: %d symbols", len(markets))

	for i, m := range markets {
		if i > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(r.cfg.StaggerDelay):
			}
		}
		if err := r.refreshOne(ctx, m.Code); err != nil {
			logger.Error("[CANDLE] %s refresh: %v", m.Code, err)
		}
	}
}

func (r *Refresher) refreshOne(ctx context.Context, symbol string) error {
	// count=2: [0] — сегодня (ещё идёт), [1] — закрытый вчерашний день
	cs, err := r.client.DailyCandles(ctx, symbol, 2)
	if err != nil {
		return err
	}
	if len(cs) < 2 {
		return errors.New("not enough daily candles")
	}
	prev := cs[1]
	if prev.HighPrice < prev.LowPrice {
		return errors.New("invalid candle: high < low")
	}

	if err := r.store.SetCandle(ctx, symbol, &models.DayCandle{
		Symbol:     symbol,
		HighPrice:  prev.HighPrice,
		LowPrice:   prev.LowPrice,
		CapturedAt: r.now(),
	}); err != nil {
		return err
	}

	return r.ensureReady(ctx, symbol)
}

// ensureReady переиздаёт ready-запись по символу, не затирая открытую
// позицию: waiting и done живут по своим правилам (продажа и кулдаун).
// Проверка состояния идёт внутри атомарного апдейта: lane может купить
// в любой момент параллельно с циклом обновления, read-then-set здесь
// потерял бы свежую waiting-запись.
func (r *Refresher) ensureReady(ctx context.Context, symbol string) error {
	_, err := r.store.UpdatePosition(ctx, symbol, func(rec *models.PositionRecord) {
		if rec.State == models.StateReady {
			*rec = *models.NewReadyRecord(symbol)
		}
	})
	if errors.Is(err, state.ErrNotFound) {
		// записи ещё нет — позиции по символу быть не может, гонки нет
		return r.store.SetPosition(ctx, symbol, models.NewReadyRecord(symbol))
	}
	return err
}

package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"breakout_bot/internal/models"
	"breakout_bot/internal/modules/config"
	"breakout_bot/internal/modules/state"
	strategy "breakout_bot/internal/modules/strategy/service"
	"breakout_bot/pkg/logger"
)

// OrderGateway — внешняя биржа, нам от неё нужно ровно два вызова.
type OrderGateway interface {
	PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderResponse, error)
	Order(ctx context.Context, orderID string) (*models.OrderDetail, error)
}

type Notifier interface {
	Send(msg string)
	Sendf(format string, args ...any)
}

// Trader — контроллер жизненного цикла позиции: ready -> waiting -> done -> ready.
// Тики одного символа сериализуются через персональную lane-горутину,
// разные символы обрабатываются параллельно.
type Trader struct {
	cfg   *config.Config
	eng   strategy.Engine
	store state.Store
	gw    OrderGateway
	n     Notifier

	now func() time.Time

	ctx    context.Context
	mu     sync.Mutex
	lanes  map[string]chan models.Tick
	timers map[string]*time.Timer // кулдаун done -> ready по символу
}

func New(cfg *config.Config, eng strategy.Engine, store state.Store, gw OrderGateway, n Notifier) *Trader {
	return &Trader{
		cfg:    cfg,
		eng:    eng,
		store:  store,
		gw:     gw,
		n:      n,
		now:    time.Now,
		lanes:  make(map[string]chan models.Tick),
		timers: make(map[string]*time.Timer),
	}
}

func (t *Trader) Start(ctx context.Context) error {
	t.ctx = ctx
	return t.recover(ctx)
}

func (t *Trader) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, tm := range t.timers {
		tm.Stop()
	}
}

// Dispatch кладёт тик в lane символа; lane создаётся лениво.
// Переполненная lane — дроп: свежий тик всё равно придёт следом.
func (t *Trader) Dispatch(tick models.Tick) {
	t.mu.Lock()
	lane, ok := t.lanes[tick.Code]
	if !ok {
		lane = make(chan models.Tick, t.cfg.LaneBuffer)
		t.lanes[tick.Code] = lane
		go t.runLane(t.ctx, lane)
	}
	t.mu.Unlock()

	select {
	case lane <- tick:
	default:
		logger.Info("[TRADER] %s lane full, tick dropped", tick.Code)
	}
}

func (t *Trader) runLane(ctx context.Context, lane <-chan models.Tick) {
	for {
		select {
		case <-ctx.Done():
			return
		case tick := <-lane:
			t.HandleTick(ctx, tick)
		}
	}
}

// HandleTick — один шаг конечного автомата для символа.
func (t *Trader) HandleTick(ctx context.Context, tick models.Tick) {
	candle, err := t.store.Candle(ctx, tick.Code)
	if errors.Is(err, state.ErrNotFound) {
		// символ ещё не инициализирован — ожидаемый скип, не ошибка
		return
	}
	if err != nil {
		logger.Error("[TRADER] %s candle read: %v", tick.Code, err)
		return
	}

	rec, err := t.store.Position(ctx, tick.Code)
	if errors.Is(err, state.ErrNotFound) {
		return
	}
	if err != nil {
		logger.Error("[TRADER] %s position read: %v", tick.Code, err)
		return
	}

	dec := t.eng.Evaluate(strategy.Input{
		Symbol:       tick.Code,
		CurrentPrice: tick.TradePrice,
		OpenPrice:    tick.OpeningPrice,
		RefHigh:      candle.HighPrice,
		RefLow:       candle.LowPrice,
		State:        rec.State,
		OpenedAt:     rec.OpenedAt,
		Now:          t.now(),
	})

	switch dec.Action {
	case models.ActionBuy:
		t.buy(ctx, tick, rec)
	case models.ActionSell:
		t.sell(ctx, tick, rec)
	}
}

func (t *Trader) buy(ctx context.Context, tick models.Tick, rec *models.PositionRecord) {
	if rec.State != models.StateReady {
		// стратегия гейтится по state, сюда попадать не должны
		return
	}

	notional := t.cfg.NotionalKRW
	resp, err := t.gw.PlaceOrder(context.WithoutCancel(ctx), models.OrderRequest{
		Market:  tick.Code,
		Side:    models.SideBid,
		Price:   formatPrice(notional),
		OrdType: models.OrdTypePrice,
	})
	if err != nil {
		// ордера нет — остаёмся в ready, никакого частичного коммита
		logger.Error("[BUY] %s order failed: %v", tick.Code, err)
		t.n.Sendf("❗️ [%s] Покупка не прошла: %v", tick.Code, err)
		return
	}

	now := t.now()
	next := &models.PositionRecord{
		Symbol:      tick.Code,
		State:       models.StateWaiting,
		OrderID:     resp.UUID,
		Side:        resp.Side,
		OrdType:     resp.OrdType,
		Strategy:    t.eng.Name(),
		EntryPrice:  tick.TradePrice,
		Quantity:    notional / tick.TradePrice,
		TotalAmount: notional,
		OpenedAt:    now,
	}
	if err := t.store.SetPosition(ctx, tick.Code, next); err != nil {
		logger.Error("[BUY] %s state write after order %s: %v", tick.Code, resp.UUID, err)
		t.n.Sendf("❗️ [%s] Ордер %s выставлен, но запись состояния упала: %v", tick.Code, resp.UUID, err)
		return
	}

	logger.Info("[BUY - %s] %s - %.4f", t.eng.Name(), tick.Code, tick.TradePrice)
	t.n.Sendf(
		">> BUY : %s\n# Strategy : %s\n* Цена входа: %.4f\n* Кол-во: %.8f ≈ %.0f KRW",
		tick.Code, t.eng.Name(), tick.TradePrice, next.Quantity, notional,
	)
}

func (t *Trader) sell(ctx context.Context, tick models.Tick, rec *models.PositionRecord) {
	if rec.State != models.StateWaiting {
		return
	}

	dctx := context.WithoutCancel(ctx) // начатую продажу не отменяем на shutdown

	volume := formatVolume(rec.Quantity)
	if rec.OrderID != "" {
		detail, err := t.gw.Order(dctx, rec.OrderID)
		if err != nil {
			// объём не узнали — остаёмся в waiting, попробуем на следующем тике
			logger.Error("[SELL] %s order history %s: %v", tick.Code, rec.OrderID, err)
			return
		}
		if detail.ExecutedVolume != "" {
			volume = detail.ExecutedVolume
		}
	}

	if _, err := t.gw.PlaceOrder(dctx, models.OrderRequest{
		Market:  tick.Code,
		Side:    models.SideAsk,
		Volume:  volume,
		OrdType: models.OrdTypeMarket,
	}); err != nil {
		logger.Error("[SELL] %s order failed: %v", tick.Code, err)
		t.n.Sendf("❗️ [%s] Продажа не прошла: %v", tick.Code, err)
		return
	}

	now := t.now()
	updated, err := t.store.UpdatePosition(ctx, tick.Code, func(r *models.PositionRecord) {
		r.State = models.StateDone
		r.ExitPrice = tick.TradePrice
		r.ClosedAt = now
	})
	if err != nil {
		logger.Error("[SELL] %s state write: %v", tick.Code, err)
		return
	}

	t.scheduleRearm(tick.Code, t.cfg.Cooldown)

	pnl := tick.TradePrice - updated.EntryPrice
	pct := 0.0
	if updated.EntryPrice > 0 {
		pct = (tick.TradePrice/updated.EntryPrice - 1) * 100
	}
	logger.Info("[SELL - %s] %s - %.4f (pnl %.4f)", t.eng.Name(), tick.Code, tick.TradePrice, pnl)
	t.n.Sendf(
		"# SELL : %s (%.4f%%)\n# Strategy : %s\n* Цена выхода: %.4f\n* Кол-во: %.8f\n* Итог: %.4f KRW",
		tick.Code, pct, t.eng.Name(), tick.TradePrice, updated.Quantity, pnl,
	)
}

// scheduleRearm взводит (или перевзводит) кулдаун-таймер done -> ready.
func (t *Trader) scheduleRearm(symbol string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if old, ok := t.timers[symbol]; ok {
		old.Stop()
	}
	t.timers[symbol] = time.AfterFunc(d, func() {
		t.rearm(symbol)
	})
}

func (t *Trader) rearm(symbol string) {
	// таймер живёт дольше входящего запроса — контекст свой
	_, err := t.store.UpdatePosition(context.Background(), symbol, func(r *models.PositionRecord) {
		if r.State == models.StateDone {
			r.State = models.StateReady
		}
	})
	if err != nil {
		logger.Error("[COOLDOWN] %s rearm: %v", symbol, err)
		return
	}
	logger.Info("[COOLDOWN] %s is ready again", symbol)
}

// recover при старте восстанавливает кулдауны из персистентного состояния:
// остаток считается от сохранённого ClosedAt, не от нового старта процесса.
// waiting-позиции не трогаем — условие продажи само сработает по OpenedAt.
func (t *Trader) recover(ctx context.Context) error {
	recs, err := t.store.Positions(ctx)
	if err != nil {
		return err
	}
	now := t.now()
	for _, rec := range recs {
		switch rec.State {
		case models.StateDone:
			remaining := t.cfg.Cooldown - now.Sub(rec.ClosedAt)
			if remaining <= 0 {
				t.rearm(rec.Symbol)
				continue
			}
			t.scheduleRearm(rec.Symbol, remaining)
			logger.Info("[RECOVER] %s cooldown resumes, %s left", rec.Symbol, remaining)
		case models.StateWaiting:
			logger.Info("[RECOVER] %s open position from %s", rec.Symbol, rec.OpenedAt.Format(time.RFC3339))
		}
	}
	return nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatVolume(v float64) string {
	return strconv.FormatFloat(v, 'f', 8, 64)
}

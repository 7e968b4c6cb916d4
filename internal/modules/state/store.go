package state

import (
	"context"
	"errors"

	"breakout_bot/internal/models"
)

// ErrNotFound — ключа нет. Update при этом ничего не создаёт.
var ErrNotFound = errors.New("state: key not found")

// Два вида записей на символ в одном KV; различаются суффиксом ключа.
const (
	tradeSuffix  = "-TRADE"
	candleSuffix = "-CANDLE"
)

func TradeKey(symbol string) string  { return symbol + tradeSuffix }
func CandleKey(symbol string) string { return symbol + candleSuffix }

// PositionStore — durable-состояние сделок. Все операции атомарны по ключу;
// это единственный ресурс, который мутируют тик-хендлер, рефрешер и
// кулдаун-таймер, поэтому никаких общих map снаружи.
type PositionStore interface {
	Position(ctx context.Context, symbol string) (*models.PositionRecord, error)
	SetPosition(ctx context.Context, symbol string, rec *models.PositionRecord) error
	// UpdatePosition — атомарный read-modify-write. apply выполняется под
	// блокировкой ключа; для отсутствующего ключа — ErrNotFound.
	UpdatePosition(ctx context.Context, symbol string, apply func(*models.PositionRecord)) (*models.PositionRecord, error)
	Positions(ctx context.Context) ([]*models.PositionRecord, error)
}

type CandleStore interface {
	Candle(ctx context.Context, symbol string) (*models.DayCandle, error)
	SetCandle(ctx context.Context, symbol string, c *models.DayCandle) error
}

type Store interface {
	PositionStore
	CandleStore
}

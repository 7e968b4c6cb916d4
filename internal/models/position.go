package models

import "time"

// PositionState — цикл жизни позиции по символу: ready -> waiting -> done -> ready.
type PositionState string

const (
	StateReady   PositionState = "ready"   // позиции нет, можно покупать
	StateWaiting PositionState = "waiting" // куплено, ждём условие продажи
	StateDone    PositionState = "done"    // продано, кулдаун до следующего входа
)

// PositionRecord — durable-запись по символу. Создаётся при инициализации (ready),
// мутируется контроллером сделок и больше никогда не удаляется.
type PositionRecord struct {
	Symbol      string        `json:"symbol"`
	State       PositionState `json:"state"`
	OrderID     string        `json:"order_id,omitempty"`
	Side        string        `json:"side,omitempty"`
	OrdType     string        `json:"ord_type,omitempty"`
	Strategy    string        `json:"strategy,omitempty"`
	EntryPrice  float64       `json:"entry_price,omitempty"`
	ExitPrice   float64       `json:"exit_price,omitempty"`
	Quantity    float64       `json:"quantity,omitempty"`
	TotalAmount float64       `json:"total_amount,omitempty"`
	OpenedAt    time.Time     `json:"opened_at,omitempty"`
	ClosedAt    time.Time     `json:"closed_at,omitempty"`
}

func NewReadyRecord(symbol string) *PositionRecord {
	return &PositionRecord{Symbol: symbol, State: StateReady}
}

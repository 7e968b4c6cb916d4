package models

import "time"

// DayCandle — high/low прошлого дня, референс для расчёта пробоя.
// Одна актуальная запись на символ, перезаписывается каждым циклом обновления.
type DayCandle struct {
	Symbol     string    `json:"symbol"`
	HighPrice  float64   `json:"high_price"`
	LowPrice   float64   `json:"low_price"`
	CapturedAt time.Time `json:"captured_at"`
}

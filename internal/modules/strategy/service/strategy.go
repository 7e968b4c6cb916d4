package service

import (
	"time"

	"breakout_bot/internal/models"
)

// Input — всё, что стратегии позволено видеть. Никакого I/O внутри Evaluate.
type Input struct {
	Symbol       string
	CurrentPrice float64
	OpenPrice    float64
	RefHigh      float64 // high прошлого дня
	RefLow       float64 // low прошлого дня

	State    models.PositionState
	OpenedAt time.Time
	Now      time.Time
}

// Engine — чистая решающая функция: тик + референс + позиция -> решение.
type Engine interface {
	Evaluate(in Input) models.Decision
	Name() string
}

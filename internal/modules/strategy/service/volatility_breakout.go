package service

import (
	"time"

	"breakout_bot/internal/models"
)

const breakoutFactor = 0.5 // k Ларри Вильямса

// VolatilityBreakout — пробой волатильности: вход, когда цена уходит выше
// open + k*(high-low) прошлого дня; выход строго по времени удержания.
// Ценового выхода нет намеренно — это свойство стратегии, а не недоработка.
type VolatilityBreakout struct {
	holdFor time.Duration
}

func NewVolatilityBreakout(holdFor time.Duration) *VolatilityBreakout {
	return &VolatilityBreakout{holdFor: holdFor}
}

func (s *VolatilityBreakout) Name() string { return "volatility_breakout" }

func (s *VolatilityBreakout) Evaluate(in Input) models.Decision {
	switch in.State {
	case models.StateReady:
		level := in.OpenPrice + breakoutFactor*(in.RefHigh-in.RefLow)
		conditions := map[string]bool{
			// строго больше: касание уровня — ещё не пробой
			"is_breakout": in.CurrentPrice > level,
		}
		if !all(conditions) {
			return models.Hold()
		}
		return models.Decision{Action: models.ActionBuy, Conditions: conditions}

	case models.StateWaiting:
		conditions := map[string]bool{
			// строго больше: ровно holdFor ещё не продаём
			"held_long_enough": in.Now.Sub(in.OpenedAt) > s.holdFor,
		}
		if !all(conditions) {
			return models.Hold()
		}
		return models.Decision{Action: models.ActionSell, Conditions: conditions}
	}

	// done и всё незнакомое — держим
	return models.Hold()
}

func all(conditions map[string]bool) bool {
	for _, ok := range conditions {
		if !ok {
			return false
		}
	}
	return true
}

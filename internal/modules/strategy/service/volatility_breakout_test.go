package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breakout_bot/internal/models"
)

func TestVolatilityBreakoutReady(t *testing.T) {
	s := NewVolatilityBreakout(300 * time.Second)

	// open=100, high=110, low=90 -> уровень пробоя 105
	tests := []struct {
		name  string
		price float64
		want  models.Action
	}{
		{"above level", 106, models.ActionBuy},
		{"exactly at level", 105, models.ActionHold},
		{"below level", 104.99, models.ActionHold},
		{"far above", 150, models.ActionBuy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := s.Evaluate(Input{
				Symbol:       "KRW-BTC",
				CurrentPrice: tt.price,
				OpenPrice:    100,
				RefHigh:      110,
				RefLow:       90,
				State:        models.StateReady,
				Now:          time.Now(),
			})
			assert.Equal(t, tt.want, dec.Action)
			if tt.want == models.ActionBuy {
				assert.True(t, dec.Conditions["is_breakout"])
			}
		})
	}
}

func TestVolatilityBreakoutWaiting(t *testing.T) {
	hold := 300 * time.Second
	s := NewVolatilityBreakout(hold)
	now := time.Now()

	tests := []struct {
		name     string
		openedAt time.Time
		want     models.Action
	}{
		{"just opened", now, models.ActionHold},
		{"exactly hold duration", now.Add(-hold), models.ActionHold},
		{"one second past", now.Add(-hold - time.Second), models.ActionSell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := s.Evaluate(Input{
				Symbol:       "KRW-BTC",
				CurrentPrice: 999, // цена не влияет на выход
				State:        models.StateWaiting,
				OpenedAt:     tt.openedAt,
				Now:          now,
			})
			assert.Equal(t, tt.want, dec.Action)
		})
	}
}

func TestVolatilityBreakoutDoneHolds(t *testing.T) {
	s := NewVolatilityBreakout(300 * time.Second)
	dec := s.Evaluate(Input{
		Symbol:       "KRW-BTC",
		CurrentPrice: 1e9,
		OpenPrice:    1,
		RefHigh:      2,
		RefLow:       1,
		State:        models.StateDone,
		Now:          time.Now(),
	})
	assert.Equal(t, models.ActionHold, dec.Action)
}

func TestVolatilityBreakoutRandomized(t *testing.T) {
	s := NewVolatilityBreakout(300 * time.Second)
	rng := rand.New(rand.NewSource(1))
	now := time.Now()

	// BUY тогда и только тогда, когда price > open + 0.5*(high-low)
	for i := 0; i < 2000; i++ {
		open := 1 + rng.Float64()*1e8
		low := open * (0.5 + rng.Float64()*0.5)
		high := low + rng.Float64()*open
		price := low * (0.5 + rng.Float64()*2)

		dec := s.Evaluate(Input{
			Symbol:       "KRW-BTC",
			CurrentPrice: price,
			OpenPrice:    open,
			RefHigh:      high,
			RefLow:       low,
			State:        models.StateReady,
			Now:          now,
		})

		wantBuy := price > open+0.5*(high-low)
		if wantBuy {
			require.Equalf(t, models.ActionBuy, dec.Action,
				"open=%v high=%v low=%v price=%v", open, high, low, price)
		} else {
			require.Equalf(t, models.ActionHold, dec.Action,
				"open=%v high=%v low=%v price=%v", open, high, low, price)
		}
	}
}

func TestVolatilityBreakoutLevelFormula(t *testing.T) {
	s := NewVolatilityBreakout(time.Minute)

	// уровень = open + 0.5*(high-low); проверяем на нетривиальных числах
	in := Input{
		Symbol:    "KRW-ETH",
		OpenPrice: 4_532_000,
		RefHigh:   4_701_000,
		RefLow:    4_380_000,
		State:     models.StateReady,
		Now:       time.Now(),
	}
	level := in.OpenPrice + 0.5*(in.RefHigh-in.RefLow)

	in.CurrentPrice = level
	require.Equal(t, models.ActionHold, s.Evaluate(in).Action)

	in.CurrentPrice = level + 0.01
	require.Equal(t, models.ActionBuy, s.Evaluate(in).Action)
}

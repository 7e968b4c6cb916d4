package state

import (
	"context"
	"strings"
	"sync"

	"breakout_bot/internal/models"

	"github.com/bytedance/sonic"
)

// Memory — стор без персистентности: для dev-режима без DSN и для тестов.
// Кодек тот же, что у pg-стора, чтобы путь сериализации был один.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{
		data: make(map[string][]byte),
	}
}

func (m *Memory) get(key string, out any) error {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return sonic.Unmarshal(raw, out)
}

func (m *Memory) set(key string, val any) error {
	raw, err := sonic.Marshal(val)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *Memory) Position(_ context.Context, symbol string) (*models.PositionRecord, error) {
	var rec models.PositionRecord
	if err := m.get(TradeKey(symbol), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (m *Memory) SetPosition(_ context.Context, symbol string, rec *models.PositionRecord) error {
	return m.set(TradeKey(symbol), rec)
}

func (m *Memory) UpdatePosition(_ context.Context, symbol string, apply func(*models.PositionRecord)) (*models.PositionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.data[TradeKey(symbol)]
	if !ok {
		return nil, ErrNotFound
	}
	var rec models.PositionRecord
	if err := sonic.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	apply(&rec)
	out, err := sonic.Marshal(&rec)
	if err != nil {
		return nil, err
	}
	m.data[TradeKey(symbol)] = out
	return &rec, nil
}

func (m *Memory) Positions(_ context.Context) ([]*models.PositionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]*models.PositionRecord, 0, len(m.data))
	for key, raw := range m.data {
		if !strings.HasSuffix(key, tradeSuffix) {
			continue
		}
		var rec models.PositionRecord
		if err := sonic.Unmarshal(raw, &rec); err != nil {
			return nil, err
		}
		res = append(res, &rec)
	}
	return res, nil
}

func (m *Memory) Candle(_ context.Context, symbol string) (*models.DayCandle, error) {
	var c models.DayCandle
	if err := m.get(CandleKey(symbol), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (m *Memory) SetCandle(_ context.Context, symbol string, c *models.DayCandle) error {
	return m.set(CandleKey(symbol), c)
}

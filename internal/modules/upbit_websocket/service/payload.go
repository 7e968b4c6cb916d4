package service

import (
	"fmt"

	"breakout_bot/internal/models"

	"github.com/bytedance/sonic"
)

type tickerFrame struct {
	Type         string  `json:"type"`
	Code         string  `json:"code"`
	TradePrice   float64 `json:"trade_price"`
	OpeningPrice float64 `json:"opening_price"`
}

// parseTick разбирает ticker-фрейм. Служебные фреймы (status и прочее без
// кода) — не ошибка, просто скип.
func parseTick(raw []byte) (models.Tick, bool, error) {
	var f tickerFrame
	if err := sonic.Unmarshal(raw, &f); err != nil {
		return models.Tick{}, false, err
	}
	if f.Type != "" && f.Type != "ticker" {
		return models.Tick{}, false, nil
	}
	if f.Code == "" {
		return models.Tick{}, false, nil
	}
	if f.TradePrice <= 0 {
		return models.Tick{}, false, fmt.Errorf("ticker %s: bad trade_price %v", f.Code, f.TradePrice)
	}
	return models.Tick{
		Code:         f.Code,
		TradePrice:   f.TradePrice,
		OpeningPrice: f.OpeningPrice,
	}, true, nil
}

// chunkCodes режет список кодов под лимит subscribe-фрейма (у Upbit ~15).
func chunkCodes(codes []string, size int) [][]string {
	if size <= 0 {
		return [][]string{codes}
	}
	var out [][]string
	for len(codes) > size {
		out = append(out, codes[:size])
		codes = codes[size:]
	}
	if len(codes) > 0 {
		out = append(out, codes)
	}
	return out
}

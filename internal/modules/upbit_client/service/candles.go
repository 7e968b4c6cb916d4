package service

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"breakout_bot/internal/models"
)

type dayCandleItem struct {
	Market    string  `json:"market"`
	HighPrice float64 `json:"high_price"`
	LowPrice  float64 `json:"low_price"`
}

// DailyCandles — последние count дневных свечей, свежие первыми
// (как отдаёт Upbit): [0] — текущий день, [1] — вчера.
func (c *Client) DailyCandles(ctx context.Context, symbol string, count int) ([]models.DayCandle, error) {
	params := url.Values{}
	params.Set("market", symbol)
	params.Set("count", strconv.Itoa(count))

	var items []dayCandleItem
	if err := c.doJSON(ctx, http.MethodGet, "/v1/candles/days", params, false, &items); err != nil {
		return nil, err
	}

	now := time.Now()
	res := make([]models.DayCandle, 0, len(items))
	for _, it := range items {
		res = append(res, models.DayCandle{
			Symbol:     it.Market,
			HighPrice:  it.HighPrice,
			LowPrice:   it.LowPrice,
			CapturedAt: now,
		})
	}
	return res, nil
}

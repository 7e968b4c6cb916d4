package service

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"breakout_bot/internal/models"
)

type marketItem struct {
	Market        string `json:"market"`
	KoreanName    string `json:"korean_name"`
	EnglishName   string `json:"english_name"`
	MarketWarning string `json:"market_warning"`
}

// ListMarkets отдаёт торгуемые символы. quote: "KRW" | "BTC" | "ALL".
// CAUTION-символы по умолчанию отфильтрованы.
func (c *Client) ListMarkets(ctx context.Context, quote string, includeCaution bool) ([]models.Market, error) {
	params := url.Values{}
	params.Set("isDetails", "true")

	var items []marketItem
	if err := c.doJSON(ctx, http.MethodGet, "/v1/market/all", params, false, &items); err != nil {
		return nil, err
	}

	res := make([]models.Market, 0, len(items))
	for _, it := range items {
		if !includeCaution && it.MarketWarning == "CAUTION" {
			continue
		}
		if quote != "ALL" && !strings.HasPrefix(it.Market, quote+"-") {
			continue
		}
		res = append(res, models.Market{
			Code:        it.Market,
			KoreanName:  it.KoreanName,
			EnglishName: it.EnglishName,
			Warning:     it.MarketWarning,
		})
	}
	return res, nil
}

package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const marketAllBody = `[
	{"market":"KRW-BTC","korean_name":"비트코인","english_name":"Bitcoin"},
	{"market":"KRW-ETH","korean_name":"이더리움","english_name":"Ethereum"},
	{"market":"KRW-RISK","korean_name":"리스크","english_name":"Risky","market_warning":"CAUTION"},
	{"market":"BTC-ETH","korean_name":"이더리움","english_name":"Ethereum"},
	{"market":"USDT-BTC","korean_name":"비트코인","english_name":"Bitcoin"}
]`

func testClient(baseURL string) *Client {
	return &Client{
		http:    &http.Client{Timeout: time.Second},
		baseURL: baseURL,
	}
}

func TestListMarketsFiltersQuoteAndCaution(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/market/all", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("isDetails"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(marketAllBody))
	}))
	defer srv.Close()

	c := testClient(srv.URL)

	markets, err := c.ListMarkets(context.Background(), "KRW", false)
	require.NoError(t, err)
	require.Len(t, markets, 2)
	assert.Equal(t, "KRW-BTC", markets[0].Code)
	assert.Equal(t, "KRW-ETH", markets[1].Code)

	withCaution, err := c.ListMarkets(context.Background(), "KRW", true)
	require.NoError(t, err)
	assert.Len(t, withCaution, 3)

	all, err := c.ListMarkets(context.Background(), "ALL", true)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestListMarketsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"name":"too_many_requests"}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).ListMarkets(context.Background(), "KRW", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestDailyCandlesOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/candles/days", r.URL.Path)
		assert.Equal(t, "KRW-BTC", r.URL.Query().Get("market"))
		assert.Equal(t, "2", r.URL.Query().Get("count"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"market":"KRW-BTC","high_price":115,"low_price":100},
			{"market":"KRW-BTC","high_price":110,"low_price":90}
		]`))
	}))
	defer srv.Close()

	cs, err := testClient(srv.URL).DailyCandles(context.Background(), "KRW-BTC", 2)
	require.NoError(t, err)
	require.Len(t, cs, 2)
	// [0] — текущий день, [1] — закрытый вчерашний
	assert.Equal(t, 115.0, cs[0].HighPrice)
	assert.Equal(t, 110.0, cs[1].HighPrice)
	assert.Equal(t, 90.0, cs[1].LowPrice)
}

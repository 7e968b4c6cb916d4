package service

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breakout_bot/internal/models"
)

func TestPlaceOrderSignsRequest(t *testing.T) {
	var gotAuth string
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/orders", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"uuid":"ord-123","side":"bid","ord_type":"price"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.accessKey = "test-access"
	c.secretKey = "test-secret"

	resp, err := c.PlaceOrder(context.Background(), models.OrderRequest{
		Market:  "KRW-BTC",
		Side:    models.SideBid,
		Price:   "10000",
		OrdType: models.OrdTypePrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-123", resp.UUID)

	// query_hash в токене считается от той же строки, что ушла в URL
	claims := parseToken(t, gotAuth, "test-secret")
	h := sha512.Sum512([]byte(gotQuery))
	assert.Equal(t, hex.EncodeToString(h[:]), claims["query_hash"])
}

func TestOrderReturnsExecutedVolume(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/order", r.URL.Path)
		assert.Equal(t, "ord-123", r.URL.Query().Get("uuid"))
		assert.NotEmpty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"uuid":"ord-123","state":"done","executed_volume":"0.09433962"}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.accessKey = "test-access"
	c.secretKey = "test-secret"

	detail, err := c.Order(context.Background(), "ord-123")
	require.NoError(t, err)
	assert.Equal(t, "done", detail.State)
	assert.Equal(t, "0.09433962", detail.ExecutedVolume)
}

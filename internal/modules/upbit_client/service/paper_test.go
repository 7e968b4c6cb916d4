package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breakout_bot/internal/models"
)

func TestPaperRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := NewPaper()

	resp, err := p.PlaceOrder(ctx, models.OrderRequest{
		Market:  "KRW-BTC",
		Side:    models.SideAsk,
		Volume:  "0.09433962",
		OrdType: models.OrdTypeMarket,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.UUID)

	detail, err := p.Order(ctx, resp.UUID)
	require.NoError(t, err)
	assert.Equal(t, "0.09433962", detail.ExecutedVolume)
}

func TestPaperMarketBuyHasNoVolume(t *testing.T) {
	ctx := context.Background()
	p := NewPaper()

	// рыночная покупка по сумме: объём неизвестен и в истории пустой
	resp, err := p.PlaceOrder(ctx, models.OrderRequest{
		Market:  "KRW-BTC",
		Side:    models.SideBid,
		Price:   "10000",
		OrdType: models.OrdTypePrice,
	})
	require.NoError(t, err)

	detail, err := p.Order(ctx, resp.UUID)
	require.NoError(t, err)
	assert.Empty(t, detail.ExecutedVolume)

	unknown, err := p.Order(ctx, "no-such-order")
	require.NoError(t, err)
	assert.Empty(t, unknown.ExecutedVolume)
}

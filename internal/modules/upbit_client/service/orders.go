package service

import (
	"context"
	"net/http"
	"net/url"

	"breakout_bot/internal/models"
)

type orderItem struct {
	UUID           string `json:"uuid"`
	Side           string `json:"side"`
	OrdType        string `json:"ord_type"`
	Volume         string `json:"volume"`
	State          string `json:"state"`
	ExecutedVolume string `json:"executed_volume"`
}

// PlaceOrder выставляет ордер. Параметры попадают и в query, и в подпись
// (query_hash), как того требует Upbit для запросов с телом.
func (c *Client) PlaceOrder(ctx context.Context, req models.OrderRequest) (*models.OrderResponse, error) {
	params := url.Values{}
	params.Set("market", req.Market)
	params.Set("side", req.Side)
	params.Set("ord_type", req.OrdType)
	if req.Volume != "" {
		params.Set("volume", req.Volume)
	}
	if req.Price != "" {
		params.Set("price", req.Price)
	}

	var item orderItem
	if err := c.doJSON(ctx, http.MethodPost, "/v1/orders", params, true, &item); err != nil {
		return nil, err
	}
	return &models.OrderResponse{
		UUID:    item.UUID,
		Side:    item.Side,
		OrdType: item.OrdType,
		Volume:  item.Volume,
	}, nil
}

// Order — один ордер из истории; нужен исполненный объём перед продажей.
func (c *Client) Order(ctx context.Context, orderID string) (*models.OrderDetail, error) {
	params := url.Values{}
	params.Set("uuid", orderID)

	var item orderItem
	if err := c.doJSON(ctx, http.MethodGet, "/v1/order", params, true, &item); err != nil {
		return nil, err
	}
	return &models.OrderDetail{
		UUID:           item.UUID,
		State:          item.State,
		ExecutedVolume: item.ExecutedVolume,
	}, nil
}

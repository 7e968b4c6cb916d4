package service

import (
	"context"
	"sync"

	"breakout_bot/internal/models"
	"breakout_bot/pkg/logger"

	"github.com/google/uuid"
)

// Paper — бумажный гейтвей для DRY_RUN: полный жизненный цикл без реальных
// ордеров. Ответы синтетические, история отдаёт объём из заявки.
type Paper struct {
	mu     sync.Mutex
	orders map[string]models.OrderRequest
}

func NewPaper() *Paper {
	return &Paper{
		orders: make(map[string]models.OrderRequest),
	}
}

func (p *Paper) PlaceOrder(_ context.Context, req models.OrderRequest) (*models.OrderResponse, error) {
	id := uuid.NewString()

	p.mu.Lock()
	p.orders[id] = req
	p.mu.Unlock()

	logger.Info("[PAPER] %s %s %s volume=%q price=%q", req.Market, req.Side, req.OrdType, req.Volume, req.Price)
	return &models.OrderResponse{
		UUID:    id,
		Side:    req.Side,
		OrdType: req.OrdType,
		Volume:  req.Volume,
	}, nil
}

func (p *Paper) Order(_ context.Context, orderID string) (*models.OrderDetail, error) {
	p.mu.Lock()
	req, ok := p.orders[orderID]
	p.mu.Unlock()
	if !ok {
		return &models.OrderDetail{UUID: orderID, State: "done"}, nil
	}
	// рыночная покупка по сумме не знает объёма — пусть решает вызывающий
	return &models.OrderDetail{
		UUID:           orderID,
		State:          "done",
		ExecutedVolume: req.Volume,
	}, nil
}

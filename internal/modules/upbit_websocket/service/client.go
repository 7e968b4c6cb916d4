package service

import (
	"context"
	"time"

	"breakout_bot/internal/models"
	"breakout_bot/internal/modules/config"
	health "breakout_bot/internal/modules/health/service"
	"breakout_bot/pkg/logger"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// MarketLister — откуда берём коды для подписки.
type MarketLister interface {
	ListMarkets(ctx context.Context, quote string, includeCaution bool) ([]models.Market, error)
}

// Client — ticker-стрим Upbit: подписка батчами, reconnect с паузой,
// типизированный канал тиков наружу.
type Client struct {
	cfg     *config.Config
	markets MarketLister
	health  *health.State

	dialer *websocket.Dialer
}

func NewClient(cfg *config.Config, markets MarketLister, st *health.State) *Client {
	return &Client{
		cfg:     cfg,
		markets: markets,
		health:  st,
		dialer:  &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
	}
}

func (c *Client) Start(ctx context.Context, out chan<- models.Tick) {
	go c.run(ctx, out)
}

func (c *Client) run(ctx context.Context, out chan<- models.Tick) {
	for {
		codes, err := c.watchlist(ctx)
		if err != nil {
			logger.Error("[WS] watchlist: %v", err)
		} else if len(codes) == 0 {
			logger.Error("[WS] empty watchlist")
		} else {
			c.stream(ctx, codes, out)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Second):
		}
	}
}

func (c *Client) watchlist(ctx context.Context) ([]string, error) {
	markets, err := c.markets.ListMarkets(ctx, c.cfg.MarketQuote, c.cfg.IncludeCaution)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(markets))
	for _, m := range markets {
		codes = append(codes, m.Code)
	}
	return codes, nil
}

// stream держит одно соединение до ошибки чтения или отмены контекста.
func (c *Client) stream(ctx context.Context, codes []string, out chan<- models.Tick) {
	logger.Info("[WS] connect, %d codes", len(codes))
	conn, _, err := c.dialer.Dial(c.cfg.Upbit.WsURL, nil)
	if err != nil {
		logger.Error("[WS] dial: %v", err)
		return
	}
	defer conn.Close()

	if err := c.subscribe(conn, codes); err != nil {
		logger.Error("[WS] subscribe: %v", err)
		return
	}
	c.health.SetWSConnected(true)
	defer c.health.SetWSConnected(false)

	// соединение не закроется само при отмене — закрываем явно,
	// ReadMessage тогда вернёт ошибку
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-stop:
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				logger.Error("[WS] read: %v", err)
			}
			return
		}

		tick, ok, err := parseTick(msg)
		if err != nil {
			// битый payload: лог и дроп, стрим живёт дальше
			logger.Error("[WS] bad payload: %v", err)
			continue
		}
		if !ok {
			continue
		}

		c.health.MarkTick()
		select {
		case out <- tick:
		case <-ctx.Done():
			return
		}
	}
}

// subscribe шлёт фреймы вида [{ticket},{type:ticker,codes:[...]}],
// не больше cfg.SubscribeBatch кодов в каждом.
func (c *Client) subscribe(conn *websocket.Conn, codes []string) error {
	for _, chunk := range chunkCodes(codes, c.cfg.SubscribeBatch) {
		frame := []any{
			map[string]string{"ticket": uuid.NewString()},
			map[string]any{"type": "ticker", "codes": chunk},
		}
		raw, err := sonic.Marshal(frame)
		if err != nil {
			return err
		}
		if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
			return err
		}
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"breakout_bot/internal/modules/config"
)

// Client — подписанный REST-клиент Upbit: вселенная символов, дневные свечи,
// выставление ордеров и история исполнения.
type Client struct {
	cfg *config.Config

	http      *http.Client
	baseURL   string
	accessKey string
	secretKey string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg:       cfg,
		http:      &http.Client{Timeout: 10 * time.Second},
		baseURL:   cfg.Upbit.RestURL,
		accessKey: cfg.Upbit.AccessKey,
		secretKey: cfg.Upbit.SecretKey,
	}
}

// doJSON выполняет запрос и декодирует ответ; params уходят в query string
// (Upbit принимает их так и для POST) и, при signed, в подпись токена.
func (c *Client) doJSON(ctx context.Context, method, path string, params url.Values, signed bool, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if signed {
		token, err := c.authToken(params)
		if err != nil {
			return fmt.Errorf("sign request: %w", err)
		}
		req.Header.Set("Authorization", token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	rb, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("upbit %s %s: http %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(rb)))
	}
	return decodeJSON(rb, out)
}

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breakout_bot/internal/modules/config"
)

func TestRegistryGet(t *testing.T) {
	cfg := &config.Config{HoldFor: 300 * time.Second, Strategy: "volatility_breakout"}
	r := NewRegistry(cfg)

	e, err := r.Get("volatility_breakout")
	require.NoError(t, err)
	assert.Equal(t, "volatility_breakout", e.Name())

	_, err = r.Get("martingale")
	assert.Error(t, err)
}

func TestNewEngineFromConfig(t *testing.T) {
	cfg := &config.Config{HoldFor: time.Minute, Strategy: "no_such_strategy"}
	_, err := NewEngine(cfg, NewRegistry(cfg))
	assert.Error(t, err)
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTick(t *testing.T) {
	raw := []byte(`{"type":"ticker","code":"KRW-BTC","trade_price":95000000.0,"opening_price":94100000.0}`)
	tick, ok, err := parseTick(raw)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "KRW-BTC", tick.Code)
	assert.Equal(t, 95000000.0, tick.TradePrice)
	assert.Equal(t, 94100000.0, tick.OpeningPrice)
}

func TestParseTickSkipsServiceFrames(t *testing.T) {
	// ответ на PING и прочие фреймы без кода — скип, не ошибка
	for _, raw := range []string{
		`{"status":"UP"}`,
		`{"type":"trade","code":"KRW-BTC","trade_price":1.0}`,
		`{}`,
	} {
		_, ok, err := parseTick([]byte(raw))
		assert.NoError(t, err, raw)
		assert.False(t, ok, raw)
	}
}

func TestParseTickRejectsBadPayload(t *testing.T) {
	_, ok, err := parseTick([]byte(`{"type":"ticker","code":"KRW-BTC"`))
	assert.Error(t, err)
	assert.False(t, ok)

	_, ok, err = parseTick([]byte(`{"type":"ticker","code":"KRW-BTC","trade_price":0}`))
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestChunkCodes(t *testing.T) {
	codes := make([]string, 35)
	for i := range codes {
		codes[i] = "KRW-X"
	}

	chunks := chunkCodes(codes, 15)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 15)
	assert.Len(t, chunks[1], 15)
	assert.Len(t, chunks[2], 5)

	assert.Empty(t, chunkCodes(nil, 15))
	assert.Len(t, chunkCodes([]string{"KRW-BTC"}, 15), 1)

	// size<=0 — один фрейм целиком
	assert.Len(t, chunkCodes(codes, 0), 1)
}

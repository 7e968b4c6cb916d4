package service

import (
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseToken(t *testing.T, header, secret string) jwt.MapClaims {
	t.Helper()
	require.True(t, strings.HasPrefix(header, "Bearer "))

	token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(tk *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestAuthTokenWithoutParams(t *testing.T) {
	c := &Client{accessKey: "test-access", secretKey: "test-secret"}

	header, err := c.authToken(nil)
	require.NoError(t, err)

	claims := parseToken(t, header, "test-secret")
	assert.Equal(t, "test-access", claims["access_key"])
	assert.NotEmpty(t, claims["nonce"])
	_, hasHash := claims["query_hash"]
	assert.False(t, hasHash)
}

func TestAuthTokenSignsQueryHash(t *testing.T) {
	c := &Client{accessKey: "test-access", secretKey: "test-secret"}

	params := url.Values{}
	params.Set("market", "KRW-BTC")
	params.Set("side", "bid")
	params.Set("price", "10000")
	params.Set("ord_type", "price")

	header, err := c.authToken(params)
	require.NoError(t, err)

	claims := parseToken(t, header, "test-secret")
	h := sha512.Sum512([]byte(params.Encode()))
	assert.Equal(t, hex.EncodeToString(h[:]), claims["query_hash"])
	assert.Equal(t, "SHA512", claims["query_hash_alg"])
}

func TestAuthTokenNonceUnique(t *testing.T) {
	c := &Client{accessKey: "a", secretKey: "s"}

	h1, err := c.authToken(nil)
	require.NoError(t, err)
	h2, err := c.authToken(nil)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

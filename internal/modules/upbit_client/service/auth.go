package service

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/url"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// authToken собирает Bearer JWT по схеме Upbit: access_key + nonce,
// и query_hash (SHA512 от url-encoded параметров), если параметры есть.
func (c *Client) authToken(params url.Values) (string, error) {
	claims := jwt.MapClaims{
		"access_key": c.accessKey,
		"nonce":      uuid.NewString(),
	}

	if len(params) > 0 {
		h := sha512.Sum512([]byte(params.Encode()))
		claims["query_hash"] = hex.EncodeToString(h[:])
		claims["query_hash_alg"] = "SHA512"
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.secretKey))
	if err != nil {
		return "", err
	}
	return "Bearer " + token, nil
}

// REST-ответы ходят через encoding/json; sonic оставлен горячему пути стрима.
func decodeJSON(raw []byte, out any) error {
	return json.Unmarshal(raw, out)
}

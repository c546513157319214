package cache

import (
	"context"
	"encoding/json"
	"time"
)

// GetJSON lê e decodifica key. Um Client nil, um miss ou um valor corrompido
// são todos tratados como ausência: o chamador vai ao banco.
func GetJSON[T any](ctx context.Context, c Client, key string) (T, bool) {
	var out T
	if c == nil {
		return out, false
	}
	raw, err := c.Get(ctx, key)
	if err != nil {
		return out, false
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return out, false
	}
	return out, true
}

// SetJSON grava v serializado. Falhas são devolvidas para log, nunca propagadas ao usuário.
func SetJSON(ctx context.Context, c Client, key string, v any, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, raw, ttl)
}

// Invalidate remove key ignorando Client nil.
func Invalidate(ctx context.Context, c Client, key string) error {
	if c == nil {
		return nil
	}
	return c.Delete(ctx, key)
}

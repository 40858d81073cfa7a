package cache

import (
	"context"
	"encoding/json"
	"time"
)

// GetOrLoadJSON is GetOrLoad for JSON-encodable values. A nil *Cache is a
// pass-through: it just calls load, so callers need no "redis enabled"
// branching of their own.
func GetOrLoadJSON[T any](
	c *Cache,
	ctx context.Context,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (*T, error),
) (*T, error) {
	if c == nil {
		return load(ctx)
	}
	b, err := c.GetOrLoad(ctx, key, ttl, func(ctx context.Context) ([]byte, error) {
		v, e := load(ctx)
		if e != nil {
			return nil, e
		}
		return json.Marshal(v)
	})
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return nil, nil
	}
	var out T
	if e := json.Unmarshal(b, &out); e != nil {
		return nil, e
	}
	return &out, nil
}

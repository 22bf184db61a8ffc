package cache

import (
	"context"
	"net/url"
	"strings"
	"time"
)

//Cache stores rendered documents by key
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Close() error
}

const keyPrefix string = "dataset-catalog:"

//Key builds a cache key from a document kind and the parts that identify it.
//Parts are path escaped so that ids containing a slash cannot collide.
func Key(kind string, parts ...string) string {
	escaped := make([]string, 0, len(parts))
	for _, p := range parts {
		escaped = append(escaped, url.PathEscape(p))
	}
	return keyPrefix + kind + ":" + strings.Join(escaped, "/")
}

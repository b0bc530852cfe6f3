// Package kv is the persistent key-value backing store behind the content
// store and the session gate: string keys, serialized text values, one
// installation per store. Drivers exist for sqlite (default), redis, and
// memory.
package kv

import (
	"context"
	"errors"
)

// DefaultMaxValueBytes caps a single value at 5 MiB, roughly the
// localStorage budget browsers grant a site.
const DefaultMaxValueBytes = 5 << 20

// ErrQuotaExceeded is returned by Set when a value is larger than the
// store's per-value limit.
var ErrQuotaExceeded = errors.New("kv: value exceeds storage quota")

// Store is a string-keyed blob store. Get reports ok=false when the key is
// absent; absence is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

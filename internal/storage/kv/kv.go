// Package kv provides byte-oriented key-value backends for the blob order store.
package kv

import "context"

// Backend stores opaque values under string keys.
type Backend interface {
	// Get returns ok=false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	// CompareAndSwap stores value only while the key still holds old. A nil
	// old requires the key to be absent. It reports false when another
	// writer got there first.
	CompareAndSwap(ctx context.Context, key string, old, value []byte) (bool, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

// Package cache provides key-value caches for resolved reference data.
// Entries never expire.
package cache

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Cache stores values by key.
type Cache[V any] interface {
	// Get returns the value for key. The bool is false on a miss.
	Get(ctx context.Context, key string) (V, bool, error)

	// Set stores value under key.
	Set(ctx context.Context, key string, value V) error
}

// Memory is an unbounded in-process cache backed by sync.Map.
// Readers and writers of different keys never contend.
type Memory[V any] struct {
	entries sync.Map
}

// NewMemory creates an empty in-memory cache.
func NewMemory[V any]() *Memory[V] {
	return &Memory[V]{}
}

// Get returns the cached value for key.
func (m *Memory[V]) Get(_ context.Context, key string) (V, bool, error) {
	if v, ok := m.entries.Load(key); ok {
		return v.(V), true, nil
	}
	var zero V
	return zero, false, nil
}

// Set stores value under key, replacing any previous value.
func (m *Memory[V]) Set(_ context.Context, key string, value V) error {
	m.entries.Store(key, value)
	return nil
}

// Len returns the number of cached entries.
func (m *Memory[V]) Len() int {
	n := 0
	m.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Tiered reads the local tier first and falls back to a shared tier.
// Shared-tier hits are copied into the local tier. Shared-tier failures are logged
// and treated as misses so an unavailable shared store never fails a lookup.
type Tiered[V any] struct {
	local  Cache[V]
	shared Cache[V]
	logger zerolog.Logger
}

// NewTiered combines a local and a shared cache.
func NewTiered[V any](local, shared Cache[V], logger zerolog.Logger) *Tiered[V] {
	return &Tiered[V]{local: local, shared: shared, logger: logger}
}

// Get returns the value from the first tier that has it.
func (t *Tiered[V]) Get(ctx context.Context, key string) (V, bool, error) {
	if v, ok, err := t.local.Get(ctx, key); err == nil && ok {
		return v, true, nil
	}

	v, ok, err := t.shared.Get(ctx, key)
	if err != nil {
		t.logger.Warn().Err(err).Str("key", key).Msg("shared cache read failed")
		var zero V
		return zero, false, nil
	}
	if !ok {
		return v, false, nil
	}

	_ = t.local.Set(ctx, key, v)
	return v, true, nil
}

// Set writes value to both tiers.
func (t *Tiered[V]) Set(ctx context.Context, key string, value V) error {
	if err := t.local.Set(ctx, key, value); err != nil {
		return err
	}
	if err := t.shared.Set(ctx, key, value); err != nil {
		t.logger.Warn().Err(err).Str("key", key).Msg("shared cache write failed")
	}
	return nil
}

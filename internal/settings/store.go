// Package settings is an in-memory key-value store shared between the
// components that record the user's choices. Nothing is persisted.
package settings

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
)

// Well-known keys written by the locale selector.
const (
	KeyLocationRegion = "locationRegion"
	KeyLocationZone   = "locationZone"
)

// Store is safe for concurrent use. Every mutation notifies subscribers,
// including writes that leave the value unchanged.
type Store struct {
	mu          sync.RWMutex
	values      map[string]any
	nextID      int
	subscribers map[int]func()
}

func New() *Store {
	return &Store{
		values:      make(map[string]any),
		subscribers: make(map[int]func()),
	}
}

// Insert sets key to value.
func (s *Store) Insert(key string, value any) {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	s.notify()
}

// Remove deletes key and returns how many keys are left.
func (s *Store) Remove(key string) int {
	s.mu.Lock()
	delete(s.values, key)
	n := len(s.values)
	s.mu.Unlock()
	s.notify()
	return n
}

func (s *Store) Contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[key]
	return ok
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Keys returns every key in sorted order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.values))
}

func (s *Store) Value(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// String returns the value of key formatted with %v, or "" when absent.
func (s *Store) String(key string) string {
	v, ok := s.Value(key)
	if !ok {
		return ""
	}
	if str, isString := v.(string); isString {
		return str
	}
	return fmt.Sprint(v)
}

// Data returns a copy of the whole store.
func (s *Store) Data() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}

// Subscribe registers fn to run after every mutation. Callbacks run on the
// mutating goroutine, outside the store lock.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// DebugDump logs every key and value at debug level.
func (s *Store) DebugDump(ctx context.Context, logger *slog.Logger) {
	data := s.Data()
	logger.DebugContext(ctx, "settings dump", "count", len(data))
	for _, key := range slices.Sorted(maps.Keys(data)) {
		logger.DebugContext(ctx, "setting", "key", key, "value", data[key])
	}
}

func (s *Store) notify() {
	s.mu.RLock()
	ids := slices.Sorted(maps.Keys(s.subscribers))
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subscribers[id])
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}

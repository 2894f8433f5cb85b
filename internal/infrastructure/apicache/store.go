// Package apicache implements the in-memory TTL response cache shared by the
// gateway services.
package apicache

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/avatarctic/hr-gateway/internal/core/ports"
)

// entry is a stored value and the instant it was written.
type entry struct {
	data      any
	timestamp time.Time
}

// Store implements ports.ResponseCache.
//
// Expiry is lazy: nothing sweeps the map, an entry is dropped only when a Read
// finds it older than the ttl that caller asked for.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry

	clock   clock.Clock
	logger  *logrus.Logger
	metrics Metrics

	// sf is nil unless WithSingleFlight was given.
	sf *singleflight.Group
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source. Tests pass clock.NewMock().
func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithLogger enables debug logging of expiries and invalidations.
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithSingleFlight makes concurrent GetOrCompute misses on the same key share
// one fetch. Without it every miss calls its own fetcher.
func WithSingleFlight() Option {
	return func(s *Store) { s.sf = &singleflight.Group{} }
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]entry),
		clock:   clock.New(),
		metrics: NoopMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NoopMetrics{}
	}
	return s
}

// Read returns the value for key if it is no older than ttl. An entry whose
// age is strictly greater than ttl is deleted and reported as absent.
func (s *Store) Read(key string, ttl time.Duration) (any, bool) {
	return s.lookup(key, ttl, nil)
}

// lookup is Read with an optional type check. A fresh entry rejected by match
// counts as a miss and stays in place.
func (s *Store) lookup(key string, ttl time.Duration, match func(any) bool) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok {
		s.metrics.Miss()
		return nil, false
	}
	if age := s.clock.Now().Sub(ent.timestamp); age > ttl {
		delete(s.entries, key)
		s.metrics.Expire()
		s.metrics.Entries(len(s.entries))
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"key": key, "age": age, "ttl": ttl}).Debug("cache entry expired")
		}
		return nil, false
	}
	if match != nil && !match(ent.data) {
		s.metrics.Miss()
		return nil, false
	}
	s.metrics.Hit()
	return ent.data, true
}

// Write stores value under key with the current time.
func (s *Store) Write(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{data: value, timestamp: s.clock.Now()}
	s.metrics.Entries(len(s.entries))
}

// Invalidate removes key if present.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; !ok {
		return
	}
	delete(s.entries, key)
	s.metrics.Invalidate(InvalidateKey)
	s.metrics.Entries(len(s.entries))
	if s.logger != nil {
		s.logger.WithField("key", key).Debug("cache entry invalidated")
	}
}

// InvalidateByPrefix removes every key that starts with prefix. Like
// Invalidate, it reports nothing when no key matched.
func (s *Store) InvalidateByPrefix(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			delete(s.entries, k)
			removed++
		}
	}
	if removed == 0 {
		return
	}
	s.metrics.Invalidate(InvalidatePrefix)
	s.metrics.Entries(len(s.entries))
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"prefix": prefix, "removed": removed}).Debug("cache prefix invalidated")
	}
}

// Len reports how many entries are physically present, expired ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	s.mu.Unlock()
	sort.Strings(keys)
	return keys
}

var _ ports.ResponseCache = (*Store)(nil)

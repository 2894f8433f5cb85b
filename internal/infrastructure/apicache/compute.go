package apicache

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/avatarctic/hr-gateway/internal/core/ports"
)

// Read is the typed form of ResponseCache.Read. A value stored with a
// different type counts as a miss and is left in place.
func Read[T any](c ports.ResponseCache, key string, ttl time.Duration) (T, bool) {
	var zero T
	var (
		v  any
		ok bool
	)
	if s, isStore := c.(*Store); isStore {
		v, ok = s.lookup(key, ttl, func(v any) bool {
			_, typed := v.(T)
			return typed
		})
	} else {
		v, ok = c.Read(key, ttl)
	}
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// GetOrCompute returns the fresh cached value for key, or calls fetch, stores
// its result and returns it. forceRefresh skips the cache lookup.
//
// A fetch error is returned as is and leaves the cache untouched. Concurrent
// misses each call their own fetcher (last completed write wins) unless the
// Store was built WithSingleFlight.
func GetOrCompute[T any](ctx context.Context, c ports.ResponseCache, key string, ttl time.Duration, fetch func(context.Context) (T, error), forceRefresh bool) (T, error) {
	if !forceRefresh {
		if v, ok := Read[T](c, key, ttl); ok {
			return v, nil
		}
	}

	if s, ok := c.(*Store); ok && s.sf != nil {
		return coalesced(ctx, s, key, fetch)
	}

	v, err := fetch(ctx)
	if err != nil {
		return v, err
	}
	c.Write(key, v)
	return v, nil
}

// coalesced shares one fetch per key among concurrent callers. The shared
// fetch runs on the leader's context without its cancellation, so it keeps
// the leader's token and request id but is not aborted when the leader goes
// away. Each caller waits on its own ctx and only it sees its cancellation.
func coalesced[T any](ctx context.Context, s *Store, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	ch := s.sf.DoChan(key, func() (any, error) {
		v, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		s.Write(key, v)
		return v, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return zero, res.Err
	}
	v, ok := res.Val.(T)
	if !ok {
		// another call site shared the key with a different type
		v, err := fetch(ctx)
		if err != nil {
			return v, err
		}
		s.Write(key, v)
		return v, nil
	}
	return v, nil
}

package resilience

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Group deduplicates concurrent calls for the same key and hands every caller
// the shared typed result.
type Group[T any] struct {
	g singleflight.Group
}

func (g *Group[T]) Do(key string, fn func() (T, error)) (T, bool, error) {
	v, err, shared := g.g.Do(key, func() (any, error) {
		return fn()
	})
	out, _ := v.(T)
	return out, shared, err
}

// DoContext is Do that stops waiting once ctx is done. The shared call keeps
// running for the remaining callers.
func (g *Group[T]) DoContext(ctx context.Context, key string, fn func() (T, error)) (T, bool, error) {
	ch := g.g.DoChan(key, func() (any, error) {
		return fn()
	})
	select {
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	case res := <-ch:
		out, _ := res.Val.(T)
		return out, res.Shared, res.Err
	}
}

func (g *Group[T]) Forget(key string) {
	g.g.Forget(key)
}

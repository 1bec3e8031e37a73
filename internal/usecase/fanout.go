package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"
)

const defaultFanoutWorkers = 8

// forkJoin runs the defining fetches of a computation concurrently and waits
// for all of them. The first failure cancels the others and fails the batch.
func forkJoin(ctx context.Context, tasks ...func(context.Context) error) error {
	p := pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()
	for _, task := range tasks {
		p.Go(task)
	}
	return p.Wait()
}

// fanOut calls fn once per key on a bounded worker pool and returns when every
// call has settled. fn owns its failure handling; index i addresses keys[i].
// Once ctx is cancelled no further keys start and the cancellation cause is
// returned.
func fanOut[K any](ctx context.Context, workers int, keys []K, fn func(ctx context.Context, i int, key K)) error {
	if len(keys) == 0 {
		return nil
	}
	if workers < 1 {
		workers = defaultFanoutWorkers
	}
	if workers > len(keys) {
		workers = len(keys)
	}

	p, err := ants.NewPool(workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer p.Release()

	var wg sync.WaitGroup
	for i, key := range keys {
		if ctx.Err() != nil {
			break
		}
		i, key := i, key
		wg.Add(1)
		if err := p.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			fn(ctx, i, key)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	wg.Wait()

	if ctx.Err() != nil {
		return context.Cause(ctx)
	}
	return nil
}

// cancelled reports whether a fetch error belongs to the pass being cancelled
// rather than to the key itself.
func cancelled(ctx context.Context) bool {
	return ctx.Err() != nil
}

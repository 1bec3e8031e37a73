package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/skauts-stats/internal/platform/resilience"
)

func TestFanOut_VisitsEveryKeyWithinWorkerBound(t *testing.T) {
	t.Parallel()

	keys := make([]int64, 20)
	for i := range keys {
		keys[i] = int64(i + 1)
	}
	results := make([]int64, len(keys))

	var inFlight, peak atomic.Int32
	err := fanOut(context.Background(), 3, keys, func(_ context.Context, i int, key int64) {
		current := inFlight.Add(1)
		for {
			seen := peak.Load()
			if current <= seen || peak.CompareAndSwap(seen, current) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		results[i] = key * 10
		inFlight.Add(-1)
	})
	if err != nil {
		t.Fatalf("fan out: %v", err)
	}

	for i, key := range keys {
		if results[i] != key*10 {
			t.Fatalf("key %d not processed", key)
		}
	}
	if peak.Load() > 3 {
		t.Fatalf("expected at most 3 concurrent calls, got %d", peak.Load())
	}
}

func TestFanOut_NoKeys(t *testing.T) {
	t.Parallel()

	called := false
	if err := fanOut(context.Background(), 4, []string{}, func(context.Context, int, string) { called = true }); err != nil {
		t.Fatalf("fan out: %v", err)
	}
	if called {
		t.Fatalf("expected no calls for empty keys")
	}
}

func TestFanOut_SupersededPassStopsSubmitting(t *testing.T) {
	t.Parallel()

	t.Run("cancelled before start", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancelCause(context.Background())
		cancel(resilience.ErrPassSuperseded)

		var calls atomic.Int32
		err := fanOut(ctx, 4, make([]int64, 50), func(context.Context, int, int64) { calls.Add(1) })
		if !errors.Is(err, resilience.ErrPassSuperseded) {
			t.Fatalf("expected superseded cause, got %v", err)
		}
		if calls.Load() != 0 {
			t.Fatalf("expected no calls after cancellation, got %d", calls.Load())
		}
	})

	t.Run("cancelled midway", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancelCause(context.Background())
		defer cancel(nil)

		var calls atomic.Int32
		err := fanOut(ctx, 1, make([]int64, 50), func(context.Context, int, int64) {
			if calls.Add(1) == 3 {
				cancel(resilience.ErrPassSuperseded)
			}
		})
		if !errors.Is(err, resilience.ErrPassSuperseded) {
			t.Fatalf("expected superseded cause, got %v", err)
		}
		if got := calls.Load(); got >= 50 {
			t.Fatalf("expected remaining keys to be skipped, got %d calls", got)
		}
	})
}

func TestForkJoin_FirstErrorCancelsBatch(t *testing.T) {
	t.Parallel()

	boom := errors.New("teams unavailable")
	var cancelled atomic.Bool

	err := forkJoin(context.Background(),
		func(context.Context) error { return boom },
		func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				cancelled.Store(true)
			case <-time.After(2 * time.Second):
			}
			return nil
		},
	)
	if !errors.Is(err, boom) {
		t.Fatalf("expected batch error, got %v", err)
	}
	if !cancelled.Load() {
		t.Fatalf("expected sibling fetch to observe cancellation")
	}
}

func TestForkJoin_AllSucceed(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	task := func(context.Context) error {
		calls.Add(1)
		return nil
	}
	if err := forkJoin(context.Background(), task, task, task); err != nil {
		t.Fatalf("fork join: %v", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 calls, got %d", calls.Load())
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/skauts-stats/internal/platform/logging"
	"github.com/riskibarqy/skauts-stats/internal/platform/resilience"
)

func TestRunPass_NewerPassDiscardsOlderResult(t *testing.T) {
	t.Parallel()

	metrics := newFakeMetrics()
	runner := NewPassRunner(resilience.NewPassTracker(), nil, metrics, logging.NewNop())
	ctx := WithSession(context.Background(), "console-1")

	started := make(chan struct{})
	done := make(chan struct{})
	var firstErr error
	go func() {
		defer close(done)
		_, firstErr = runPass(ctx, runner, ViewDashboard, "7", func(ctx context.Context, _ string) (int, error) {
			close(started)
			<-ctx.Done()
			return 1, nil
		})
	}()

	<-started
	got, err := runPass(ctx, runner, ViewDashboard, "7", func(context.Context, string) (int, error) {
		return 2, nil
	})
	if err != nil {
		t.Fatalf("latest pass failed: %v", err)
	}
	if got != 2 {
		t.Fatalf("unexpected latest result: %d", got)
	}

	<-done
	if !errors.Is(firstErr, ErrStaleComputation) {
		t.Fatalf("expected ErrStaleComputation for superseded pass, got %v", firstErr)
	}
	if metrics.staleCount(ViewDashboard) != 1 {
		t.Fatalf("expected one stale pass recorded, got %d", metrics.staleCount(ViewDashboard))
	}
}

func TestRunPass_WithoutSessionNeverSupersedes(t *testing.T) {
	t.Parallel()

	runner := NewPassRunner(resilience.NewPassTracker(), nil, nil, logging.NewNop())
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	var firstErr error
	go func() {
		defer close(done)
		_, firstErr = runPass(ctx, runner, ViewDashboard, "7", func(context.Context, string) (int, error) {
			close(started)
			<-release
			return 1, nil
		})
	}()

	<-started
	if _, err := runPass(ctx, runner, ViewDashboard, "7", func(context.Context, string) (int, error) { return 2, nil }); err != nil {
		t.Fatalf("second pass failed: %v", err)
	}
	close(release)
	<-done
	if firstErr != nil {
		t.Fatalf("expected untracked pass to keep its result, got %v", firstErr)
	}
}

func TestRunPass_DifferentResourcesDoNotInterfere(t *testing.T) {
	t.Parallel()

	runner := NewPassRunner(resilience.NewPassTracker(), nil, nil, logging.NewNop())
	ctx := WithSession(context.Background(), "console-1")

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	var firstErr error
	go func() {
		defer close(done)
		_, firstErr = runPass(ctx, runner, ViewTeamRoster, "t-1", func(context.Context, string) (int, error) {
			close(started)
			<-release
			return 1, nil
		})
	}()

	<-started
	if _, err := runPass(ctx, runner, ViewTeamRoster, "t-2", func(context.Context, string) (int, error) { return 2, nil }); err != nil {
		t.Fatalf("second pass failed: %v", err)
	}
	close(release)
	<-done
	if firstErr != nil {
		t.Fatalf("expected pass for another team to survive, got %v", firstErr)
	}
}

func TestRunPass_RecordsOutcome(t *testing.T) {
	t.Parallel()

	metrics := newFakeMetrics()
	runner := NewPassRunner(nil, nil, metrics, logging.NewNop())

	_, _ = runPass(context.Background(), runner, ViewPrizes, "7", func(context.Context, string) (int, error) {
		return 0, errors.New("boom")
	})
	_, _ = runPass(context.Background(), runner, ViewPrizes, "7", func(_ context.Context, passID string) (int, error) {
		if passID == "" {
			t.Errorf("expected pass id to be assigned")
		}
		return 1, nil
	})

	metrics.mu.Lock()
	defer metrics.mu.Unlock()
	got := metrics.outcomes[ViewPrizes]
	if len(got) != 2 || got[0] != OutcomeFailed || got[1] != OutcomeOK {
		t.Fatalf("unexpected outcomes: %v", got)
	}
}

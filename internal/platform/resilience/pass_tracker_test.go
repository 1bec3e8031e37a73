package resilience

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestPassTracker_NewerPassSupersedesOlder(t *testing.T) {
	tracker := NewPassTracker()
	key := PassKey{Session: "s1", View: "dashboard", Resource: "7"}

	firstCtx, first := tracker.Begin(context.Background(), key, "p1")
	secondCtx, second := tracker.Begin(context.Background(), key, "p2")

	if tracker.IsCurrent(first) {
		t.Fatalf("expected first pass to be stale")
	}
	if !tracker.IsCurrent(second) {
		t.Fatalf("expected second pass to be current")
	}
	if !errors.Is(context.Cause(firstCtx), ErrPassSuperseded) {
		t.Fatalf("expected first pass cancelled as superseded, got %v", context.Cause(firstCtx))
	}
	if secondCtx.Err() != nil {
		t.Fatalf("expected second pass context alive, got %v", secondCtx.Err())
	}

	tracker.Finish(first)
	if tracker.Active() != 1 {
		t.Fatalf("finishing a stale pass must not drop the current one")
	}

	tracker.Finish(second)
	if tracker.Active() != 0 {
		t.Fatalf("expected no active passes, got %d", tracker.Active())
	}
	if secondCtx.Err() == nil {
		t.Fatalf("expected finished pass context released")
	}
}

func TestPassTracker_KeysAreIndependent(t *testing.T) {
	tracker := NewPassTracker()

	_, dashboard := tracker.Begin(context.Background(), PassKey{Session: "s1", View: "dashboard", Resource: "7"}, "p1")
	_, roster := tracker.Begin(context.Background(), PassKey{Session: "s1", View: "team_roster", Resource: "t-1"}, "p2")
	_, otherSession := tracker.Begin(context.Background(), PassKey{Session: "s2", View: "dashboard", Resource: "7"}, "p3")

	for _, pass := range []Pass{dashboard, roster, otherSession} {
		if !tracker.IsCurrent(pass) {
			t.Fatalf("expected pass %s to be current", pass.ID)
		}
	}
}

func TestPassTracker_ConcurrentBeginKeepsHighestSequence(t *testing.T) {
	tracker := NewPassTracker()
	key := PassKey{Session: "s1", View: "match_detail", Resource: "42"}

	const passes = 64
	ctxs := make([]context.Context, passes)
	tokens := make([]Pass, passes)

	var wg sync.WaitGroup
	for i := 0; i < passes; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctxs[i], tokens[i] = tracker.Begin(context.Background(), key, strconv.Itoa(i))
		}(i)
	}
	wg.Wait()

	latest := 0
	for i := range tokens {
		if tokens[i].seq > tokens[latest].seq {
			latest = i
		}
	}

	for i, pass := range tokens {
		if i == latest {
			if !tracker.IsCurrent(pass) {
				t.Fatalf("expected pass with highest sequence to be current")
			}
			if ctxs[i].Err() != nil {
				t.Fatalf("expected current pass context to stay open, got %v", context.Cause(ctxs[i]))
			}
			continue
		}
		if tracker.IsCurrent(pass) {
			t.Fatalf("expected pass %s to be stale", pass.ID)
		}
		if !errors.Is(context.Cause(ctxs[i]), ErrPassSuperseded) {
			t.Fatalf("expected pass %s to be superseded, got %v", pass.ID, context.Cause(ctxs[i]))
		}
	}
}

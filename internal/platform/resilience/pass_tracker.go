package resilience

import (
	"context"
	"errors"
	"sync"
)

// ErrPassSuperseded is the cancellation cause of a pass replaced by a newer
// one for the same key.
var ErrPassSuperseded = errors.New("computation pass superseded")

// PassKey identifies the computation a pass belongs to. Two passes with the
// same key race; only the most recent one may publish its result.
type PassKey struct {
	Session  string
	View     string
	Resource string
}

// Pass is the generation token handed out by PassTracker.Begin.
type Pass struct {
	Key PassKey
	ID  string
	seq uint64
}

type activePass struct {
	seq    uint64
	cancel context.CancelCauseFunc
}

// PassTracker keeps the latest generation per key. Starting a pass cancels the
// context of the one it replaces.
type PassTracker struct {
	mu     sync.Mutex
	seq    uint64
	active map[PassKey]activePass
}

func NewPassTracker() *PassTracker {
	return &PassTracker{active: make(map[PassKey]activePass)}
}

// Begin registers a new pass for key and returns a context cancelled when a
// newer pass for the same key starts.
func (t *PassTracker) Begin(ctx context.Context, key PassKey, passID string) (context.Context, Pass) {
	passCtx, cancel := context.WithCancelCause(ctx)

	t.mu.Lock()
	t.seq++
	pass := Pass{Key: key, ID: passID, seq: t.seq}
	if previous, ok := t.active[key]; ok {
		previous.cancel(ErrPassSuperseded)
	}
	t.active[key] = activePass{seq: pass.seq, cancel: cancel}
	t.mu.Unlock()

	return passCtx, pass
}

// IsCurrent reports whether no newer pass for the same key has started.
func (t *PassTracker) IsCurrent(pass Pass) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, ok := t.active[pass.Key]
	return ok && current.seq == pass.seq
}

// Finish releases the pass. The key entry is dropped only if pass is still the
// latest one.
func (t *PassTracker) Finish(pass Pass) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, ok := t.active[pass.Key]
	if !ok || current.seq != pass.seq {
		return
	}
	current.cancel(context.Canceled)
	delete(t.active, pass.Key)
}

func (t *PassTracker) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.active)
}

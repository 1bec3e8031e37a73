package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/skauts-stats/internal/platform/id"
	"github.com/riskibarqy/skauts-stats/internal/platform/logging"
	"github.com/riskibarqy/skauts-stats/internal/platform/resilience"
)

// PassRunner wraps every computation in a pass: it assigns the pass id,
// records telemetry and, when the request carries a console session, discards
// results superseded by a newer pass for the same view and resource.
type PassRunner struct {
	tracker *resilience.PassTracker
	ids     id.Generator
	metrics MetricsRecorder
	logger  *logging.Logger
}

func NewPassRunner(tracker *resilience.PassTracker, ids id.Generator, metrics MetricsRecorder, logger *logging.Logger) *PassRunner {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &PassRunner{
		tracker: tracker,
		ids:     ids,
		metrics: metrics,
		logger:  logger,
	}
}

func (r *PassRunner) recorder() MetricsRecorder {
	if r == nil {
		return nopMetrics{}
	}
	return r.metrics
}

func (r *PassRunner) newPassID() string {
	if r == nil {
		return ""
	}
	passID, err := r.ids.NewID()
	if err != nil {
		r.logger.Warn("generate pass id failed", "error", err)
		return ""
	}
	return passID
}

func runPass[T any](
	ctx context.Context,
	r *PassRunner,
	view, resource string,
	fn func(ctx context.Context, passID string) (T, error),
) (T, error) {
	started := time.Now()
	passID := r.newPassID()
	session := sessionFromContext(ctx)
	ctx = logging.ContextWithFields(ctx, "view", view, "console_session", session)

	if r == nil || r.tracker == nil || session == "" {
		out, err := fn(ctx, passID)
		r.recorder().ObserveComputation(view, outcomeOf(err), time.Since(started))
		annotatePass(ctx, view, passID, outcomeOf(err), err)
		return out, err
	}

	key := resilience.PassKey{Session: session, View: view, Resource: resource}
	passCtx, pass := r.tracker.Begin(ctx, key, passID)
	defer r.tracker.Finish(pass)

	out, err := fn(passCtx, passID)
	if !r.tracker.IsCurrent(pass) || errors.Is(context.Cause(passCtx), resilience.ErrPassSuperseded) {
		r.metrics.IncStalePass(view)
		r.metrics.ObserveComputation(view, OutcomeStale, time.Since(started))
		r.logger.InfoContext(ctx, "stale computation discarded",
			"resource", resource,
			"pass_id", passID,
		)
		annotatePass(ctx, view, passID, OutcomeStale, nil)
		var zero T
		return zero, fmt.Errorf("%w: %s %s", ErrStaleComputation, view, resource)
	}

	r.metrics.ObserveComputation(view, outcomeOf(err), time.Since(started))
	annotatePass(ctx, view, passID, outcomeOf(err), err)
	return out, err
}

func outcomeOf(err error) string {
	if err != nil {
		return OutcomeFailed
	}
	return OutcomeOK
}

package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("skauts-stats/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

const (
	attrOrganizationID = attribute.Key("skauts.organization_id")
	attrMatchID        = attribute.Key("skauts.match_id")
	attrTeamID         = attribute.Key("skauts.team_id")
	attrView           = attribute.Key("skauts.view")
	attrPassID         = attribute.Key("skauts.pass_id")
	attrOutcome        = attribute.Key("skauts.outcome")
)

// startUsecaseSpan opens a child span only under an existing request span.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if name == "" || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// annotatePass tags the span in ctx with the pass outcome.
func annotatePass(ctx context.Context, view, passID, outcome string, err error) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(attrView.String(view), attrPassID.String(passID), attrOutcome.String(outcome))
	if err != nil && outcome != OutcomeStale {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

package fsm

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// startStartSpan creates the span covering Start and the initial state's
// action, including any events it chains. The caller ends the span.
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startStartSpan(ctx context.Context, mctx *Context, table string, initial StateKind) (context.Context, trace.Span) {
	tracer := otel.Tracer("fsm")
	ctx, span := tracer.Start(ctx, "fsm.start")
	span.SetAttributes(
		attribute.String("machine_id", mctx.MachineID),
		attribute.String("table", table),
		attribute.String("initial_state", string(initial)),
	)

	return ctx, span
}

// startDispatchSpan creates the span covering one external dispatch and every
// event it chains. The caller ends the span.
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startDispatchSpan(
	ctx context.Context,
	mctx *Context,
	table string,
	state StateKind,
	event Event,
) (context.Context, trace.Span) {
	tracer := otel.Tracer("fsm")
	ctx, span := tracer.Start(ctx, "fsm.dispatch")
	span.SetAttributes(
		attribute.String("machine_id", mctx.MachineID),
		attribute.String("table", table),
		attribute.String("state", string(state)),
		attribute.String("event", string(event.Kind)),
	)

	return ctx, span
}

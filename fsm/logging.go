package fsm

import (
	"context"
	"log/slog"
)

// Logger provides logging hooks for machine execution.
type Logger interface {
	StateEntered(ctx context.Context, kind StateKind, event Event)
	TransitionExecuted(ctx context.Context, t Transition, event Event)
	MachineCompleted(ctx context.Context, kind StateKind)
	DispatchIgnored(ctx context.Context, kind StateKind, event Event)
}

// DefaultLogger implements Logger using slog.
type DefaultLogger struct {
	logger *slog.Logger
}

// NewDefaultLogger creates a Logger backed by the given slog logger, or
// slog.Default when nil.
func NewDefaultLogger(logger *slog.Logger) *DefaultLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return &DefaultLogger{
		logger: logger,
	}
}

func (l *DefaultLogger) StateEntered(ctx context.Context, kind StateKind, event Event) {
	l.logger.InfoContext(ctx, "State entered",
		"state", kind,
		"event", event.Kind,
	)
}

func (l *DefaultLogger) TransitionExecuted(ctx context.Context, t Transition, event Event) {
	l.logger.InfoContext(ctx, "Transition executed",
		"from", t.From,
		"to", t.To,
		"event", event.Kind,
	)
}

func (l *DefaultLogger) MachineCompleted(ctx context.Context, kind StateKind) {
	l.logger.InfoContext(ctx, "Machine completed",
		"state", kind,
	)
}

func (l *DefaultLogger) DispatchIgnored(ctx context.Context, kind StateKind, event Event) {
	l.logger.DebugContext(ctx, "Dispatch ignored in terminal state",
		"state", kind,
		"event", event.Kind,
	)
}

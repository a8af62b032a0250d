package fsm

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/atomic"

	"github.com/amp-labs/amp-fsm/assert"
)

const defaultMaxChainDepth = 256

// CompletionFunc is invoked when the machine reaches a stable point: an
// event arrived at a terminal state with no matching rule. It fires at most
// once per terminal entry.
type CompletionFunc func(kind StateKind)

// Engine owns one live state value over a validated table and drives
// execution: each dispatched event is matched against the table, the next
// state is constructed from the shared Context, and control is handed to its
// action together with a continuation for self-triggered follow-up events.
//
// Execution is strictly single-threaded and continuation-passing: a chain of
// self-triggered events resolves depth-first, fully, before the outer
// Dispatch returns. External callers are serialized by an internal mutex;
// the continuation deliberately bypasses it because it always runs on the
// dispatching stack.
type Engine struct {
	table      *Table
	mctx       *Context
	logger     Logger
	onComplete CompletionFunc
	maxDepth   int
	metrics    bool

	mu      sync.Mutex
	started atomic.Bool

	// Guarded by mu.
	live               State
	completionSignaled bool
	depth              int
	peak               int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the execution logger.
func WithLogger(logger Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithCompletion sets the completion callback.
func WithCompletion(fn CompletionFunc) Option {
	return func(e *Engine) {
		e.onComplete = fn
	}
}

// WithMaxChainDepth bounds how deep a self-triggered event chain may recurse
// before dispatch fails with ErrChainTooDeep. The default is 256.
func WithMaxChainDepth(depth int) Option {
	return func(e *Engine) {
		e.maxDepth = depth
	}
}

// WithMetrics toggles Prometheus metric collection. Enabled by default;
// useful to disable for short-lived machines in hot paths.
func WithMetrics(enabled bool) Option {
	return func(e *Engine) {
		e.metrics = enabled
	}
}

// New creates an Engine over a built table. The table's own Build already
// proved exhaustiveness, so construction only wires the runtime pieces.
// A nil machine context gets a fresh one.
func New(table *Table, mctx *Context, opts ...Option) (*Engine, error) {
	if table == nil {
		return nil, ErrNilTable
	}

	if mctx == nil {
		mctx = NewContext()
	}

	e := &Engine{
		table:    table,
		mctx:     mctx,
		maxDepth: defaultMaxChainDepth,
		metrics:  true,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = NewDefaultLogger(mctx.Logger)
	}

	return e, nil
}

// Context returns the shared machine context.
func (e *Engine) Context() *Context {
	return e.mctx
}

// Current returns the kind of the live state, or false before Start.
func (e *Engine) Current() (StateKind, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.live == nil {
		return "", false
	}

	return e.live.Kind(), true
}

// Start constructs the initial state and runs its action. One-shot: a second
// call fails with ErrAlreadyStarted. initial must be a member of the table's
// derived state set. args are forwarded to the initial state's factory.
//
// The initial action receives a zero Event (Kind "") and may invoke the
// continuation to self-trigger the first real event; any chain it starts
// fully resolves before Start returns.
func (e *Engine) Start(ctx context.Context, initial StateKind, args ...any) error {
	if !e.table.HasState(initial) {
		return fmt.Errorf("%w: initial state %q", ErrUnknownState, initial)
	}

	if !e.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, span := startStartSpan(ctx, e.mctx, e.table.Name(), initial)
	defer span.End()

	factory := e.table.factory(initial)
	assert.True(factory != nil, "fsm: no factory for state %q after successful build", initial)

	state := factory(e.mctx, args...)
	e.live = state
	e.completionSignaled = false
	e.peak = 0

	e.logger.StateEntered(ctx, initial, Event{})

	err := state.Act(ctx, Event{}, e.continuation(ctx))

	e.observeChainDepth()

	return WrapStateError(initial, err)
}

// Dispatch feeds one event to the machine. Safe to call after the machine
// reached a terminal state: the event is ignored and the completion signal
// fires (once per terminal entry). Any events chained by the actions it
// triggers are fully resolved before Dispatch returns.
func (e *Engine) Dispatch(ctx context.Context, event Event) error {
	if !e.started.Load() {
		return ErrNotStarted
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	current := e.live.Kind()

	ctx, span := startDispatchSpan(ctx, e.mctx, e.table.Name(), current, event)
	defer span.End()

	e.peak = 0

	err := e.dispatch(ctx, event)

	e.observeChainDepth()

	if err != nil {
		span.RecordError(err)
		e.countDispatch(outcomeError)
	}

	return err
}

// continuation returns the callback handed to a state's action. Invoking it
// re-enters dispatch synchronously; e.mu is already held by the external
// Dispatch (or Start) at the bottom of the stack.
func (e *Engine) continuation(ctx context.Context) Continuation {
	return func(event Event) error {
		e.depth++
		if e.depth > e.peak {
			e.peak = e.depth
		}

		defer func() {
			e.depth--
		}()

		if e.depth > e.maxDepth {
			return fmt.Errorf("%w: depth %d", ErrChainTooDeep, e.depth)
		}

		return e.dispatch(ctx, event)
	}
}

// dispatch resolves one event against the table. Caller holds e.mu.
func (e *Engine) dispatch(ctx context.Context, event Event) error {
	current := e.live.Kind()

	index, found := e.table.Match(current, event.Kind)
	if !found {
		return e.handleNoTransition(ctx, current, event)
	}

	t := e.table.TransitionAt(index)

	factory := e.table.factory(t.To)
	assert.True(factory != nil, "fsm: no factory for state %q after successful build", t.To)

	// The previous state value is retired here; only Context and the event
	// payload carry data across.
	next := factory(e.mctx)
	e.live = next
	e.completionSignaled = false

	e.mctx.recordTransition(t.From, event.Kind, t.To)
	e.logger.TransitionExecuted(ctx, t, event)
	e.logger.StateEntered(ctx, t.To, event)

	if e.metrics {
		transitionsTotal.WithLabelValues(
			sanitizeTable(e.table.Name()),
			string(t.From),
			string(event.Kind),
			string(t.To),
		).Inc()
	}

	e.countDispatch(outcomeTransition)

	if err := next.Act(ctx, event, e.continuation(ctx)); err != nil {
		return WrapTransitionError(t, err)
	}

	return nil
}

func (e *Engine) countDispatch(outcome string) {
	if e.metrics {
		dispatchTotal.WithLabelValues(sanitizeTable(e.table.Name()), outcome).Inc()
	}
}

func (e *Engine) observeChainDepth() {
	if e.metrics {
		chainDepth.WithLabelValues(sanitizeTable(e.table.Name())).Observe(float64(e.peak))
	}
}

// handleNoTransition covers the "no rule matched" outcomes. For a terminal
// state this is the intended end-of-life signal; for any other state the
// exhaustiveness check proved it unreachable, so reaching it reports a
// defect instead of a normal error outcome.
func (e *Engine) handleNoTransition(ctx context.Context, current StateKind, event Event) error {
	if !e.table.IsTerminal(current) {
		e.countDispatch(outcomeInvariant)

		return WrapStateError(current,
			fmt.Errorf("%w: no transition for event %q", ErrInvariantViolation, event.Kind))
	}

	if e.completionSignaled {
		e.countDispatch(outcomeIgnored)
		e.logger.DispatchIgnored(ctx, current, event)

		return nil
	}

	e.completionSignaled = true

	e.countDispatch(outcomeCompleted)

	if e.metrics {
		completionsTotal.WithLabelValues(sanitizeTable(e.table.Name()), string(current)).Inc()
	}

	e.logger.MachineCompleted(ctx, current)

	if e.onComplete != nil {
		e.onComplete(current)
	}

	return nil
}

// Package fsm implements a table-driven finite state machine engine. A
// machine is declared as a transition table, validated for exhaustive
// coverage when built, and executed by dispatching events: each event
// constructs the next state and hands it a continuation through which it may
// synchronously chain follow-up events.
package fsm

import "context"

// StateKind names a distinct phase of a machine. Kinds are compared
// nominally: two kinds are the same only if they are the same named kind.
type StateKind string

// EventKind names a distinct kind of stimulus fed to a machine.
type EventKind string

// Event is a stimulus with an optional payload. Events are immutable by
// convention; an action that must report a failure wraps it in a
// failure-carrying Event and routes it through the table like any other.
type Event struct {
	Kind    EventKind
	Payload any
}

// Continuation hands the engine the next event. Invoking it re-enters
// dispatch synchronously on the caller's stack: the chained event, and any
// events its own action chains, fully resolve before the call returns.
// An implementation that needs asynchronous work must defer the invocation
// itself; the engine only constrains that invoking it is how a transition
// is initiated.
type Continuation func(Event) error

// State is a live state value. A fresh value is constructed on every
// transition into its kind and discarded on the next transition out.
type State interface {
	Kind() StateKind

	// Act runs the state's action. event is the event that caused entry
	// (zero-valued on initial entry via Start). next may be invoked zero or
	// more times to self-trigger follow-up events.
	Act(ctx context.Context, event Event, next Continuation) error
}

// StateFactory constructs a state value for its kind. Every factory receives
// the one shared machine Context; args are only non-empty for the initial
// state, carrying whatever Start was called with.
type StateFactory func(mctx *Context, args ...any) State

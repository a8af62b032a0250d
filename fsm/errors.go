package fsm

import (
	"errors"
	"fmt"
)

// Predefined error types.
var (
	// ErrNameRequired indicates that a table name is required.
	ErrNameRequired = errors.New("table name is required")
	// ErrEmptyTable indicates that a table declares no transitions.
	ErrEmptyTable = errors.New("transition table must declare at least one transition")
	// ErrIncompleteTable indicates missing (state, event) coverage for a
	// non-terminal state. No machine is ever constructed from such a table.
	ErrIncompleteTable = errors.New("incomplete transition table")
	// ErrDuplicateTransition indicates a repeated (from, on) pair in strict mode.
	ErrDuplicateTransition = errors.New("duplicate transition")
	// ErrUnknownState indicates a state kind that is not in the derived state set.
	ErrUnknownState = errors.New("state not declared in table")
	// ErrNoFactory indicates a derived state kind without a registered factory.
	ErrNoFactory = errors.New("no state factory registered")
	// ErrNilTable indicates engine construction without a built table.
	ErrNilTable = errors.New("table is nil")
	// ErrAlreadyStarted indicates a second call to Start.
	ErrAlreadyStarted = errors.New("machine already started")
	// ErrNotStarted indicates a Dispatch before Start.
	ErrNotStarted = errors.New("machine not started")
	// ErrChainTooDeep indicates a self-triggered event chain exceeding the
	// configured depth bound.
	ErrChainTooDeep = errors.New("event chain exceeds maximum depth")
	// ErrInvariantViolation indicates dispatch found no transition for a
	// non-terminal state. The checker proves this unreachable for any built
	// table; seeing it means a programming defect, not a domain failure.
	ErrInvariantViolation = errors.New("transition table invariant violated")

	// ErrConfigTransitionFromRequired indicates a config transition without a from state.
	ErrConfigTransitionFromRequired = errors.New("transition from state is required")
	// ErrConfigTransitionOnRequired indicates a config transition without an event.
	ErrConfigTransitionOnRequired = errors.New("transition event is required")
	// ErrConfigTransitionToRequired indicates a config transition without a to state.
	ErrConfigTransitionToRequired = errors.New("transition to state is required")
)

// StateError wraps an error with the state it occurred in.
type StateError struct {
	State StateKind
	Err   error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("state %s: %v", e.State, e.Err)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// TransitionError wraps an error with the transition being taken.
type TransitionError struct {
	From StateKind
	On   EventKind
	To   StateKind
	Err  error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transition %s --%s--> %s: %v", e.From, e.On, e.To, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// WrapStateError wraps an error with state context. Returns nil for nil.
func WrapStateError(state StateKind, err error) error {
	if err == nil {
		return nil
	}

	return &StateError{
		State: state,
		Err:   err,
	}
}

// WrapTransitionError wraps an error with transition context. Returns nil for nil.
func WrapTransitionError(t Transition, err error) error {
	if err == nil {
		return nil
	}

	return &TransitionError{
		From: t.From,
		On:   t.On,
		To:   t.To,
		Err:  err,
	}
}

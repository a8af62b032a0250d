package fsm

import (
	"fmt"

	"github.com/amp-labs/amp-fsm/errors"
	"github.com/amp-labs/amp-fsm/kindset"
)

// Builder accumulates a transition table declaration and validates it as a
// whole. Build is the all-or-nothing gate: derivation, the exhaustiveness
// check, terminal marking checks, and factory coverage all run before any
// Table exists, so no partially-valid machine can ever be constructed.
type Builder struct {
	name        string
	transitions []Transition
	terminal    []StateKind
	factories   map[StateKind]StateFactory
	strict      bool
}

// NewBuilder creates a builder for a named transition table.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:      name,
		factories: make(map[StateKind]StateFactory),
	}
}

// Transition declares a (from, on) -> to rule. Declaration order matters:
// when two rules share a (from, on) pair, the first declared wins at match
// time unless Strict is set.
func (b *Builder) Transition(from StateKind, on EventKind, to StateKind) *Builder {
	b.transitions = append(b.transitions, Transition{From: from, On: on, To: to})

	return b
}

// Transitions declares several rules at once, preserving their order.
func (b *Builder) Transitions(transitions ...Transition) *Builder {
	b.transitions = append(b.transitions, transitions...)

	return b
}

// Terminal marks state kinds as terminal, exempting them from the
// exhaustiveness requirement. A terminal state is a legitimate dead end.
func (b *Builder) Terminal(kinds ...StateKind) *Builder {
	b.terminal = append(b.terminal, kinds...)

	return b
}

// Register associates a state kind with the factory that constructs its
// live values. Every derived state kind must have one by Build time.
func (b *Builder) Register(kind StateKind, factory StateFactory) *Builder {
	b.factories[kind] = factory

	return b
}

// Strict makes Build reject duplicate (from, on) pairs instead of resolving
// them by declaration order.
func (b *Builder) Strict() *Builder {
	b.strict = true

	return b
}

// Build validates the declaration and returns an immutable Table, or an
// error describing every problem found. On error no Table is returned.
func (b *Builder) Build() (*Table, error) {
	if b.name == "" {
		return nil, ErrNameRequired
	}

	if len(b.transitions) == 0 {
		return nil, fmt.Errorf("table %q: %w", b.name, ErrEmptyTable)
	}

	if b.strict {
		if err := b.checkDuplicates(); err != nil {
			return nil, err
		}
	}

	states, events := deriveKinds(b.transitions)
	terminal := kindset.New(b.terminal...)

	var errs errors.Collection

	for _, kind := range terminal.Values() {
		if !states.Contains(kind) {
			errs.Add(fmt.Errorf("%w: terminal state %q", ErrUnknownState, kind))
		}
	}

	errs.Add(checkExhaustive(b.transitions, states, events, terminal))

	for _, kind := range states.Values() {
		if b.factories[kind] == nil {
			errs.Add(fmt.Errorf("%w: state %q", ErrNoFactory, kind))
		}
	}

	if errs.HasError() {
		return nil, fmt.Errorf("table %q: %w", b.name, errs.GetError())
	}

	transitions := make([]Transition, len(b.transitions))
	copy(transitions, b.transitions)

	factories := make(map[StateKind]StateFactory, len(b.factories))
	for kind, factory := range b.factories {
		factories[kind] = factory
	}

	return &Table{
		name:        b.name,
		transitions: transitions,
		states:      states,
		events:      events,
		terminal:    terminal,
		factories:   factories,
		matcher:     newMatcher(transitions),
	}, nil
}

// checkDuplicates reports every repeated (from, on) pair.
func (b *Builder) checkDuplicates() error {
	seen := make(map[matchKey]bool, len(b.transitions))

	var errs errors.Collection

	for _, t := range b.transitions {
		key := matchKey{state: t.From, event: t.On}
		if seen[key] {
			errs.Add(fmt.Errorf("%w: (%s, %s) declared more than once", ErrDuplicateTransition, t.From, t.On))

			continue
		}

		seen[key] = true
	}

	if errs.HasError() {
		return fmt.Errorf("table %q: %w", b.name, errs.GetError())
	}

	return nil
}

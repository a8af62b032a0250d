package fsm

import "github.com/amp-labs/amp-fsm/kindset"

// Table is a validated, immutable transition table: the ordered transitions,
// the derived state and event kind sets, the terminal marking, and a factory
// for every state kind. Only Builder.Build produces a Table, and it refuses
// to produce one that fails the exhaustiveness check, so holders of a Table
// never re-verify coverage.
type Table struct {
	name        string
	transitions []Transition
	states      *kindset.Set[StateKind]
	events      *kindset.Set[EventKind]
	terminal    *kindset.Set[StateKind]
	factories   map[StateKind]StateFactory
	matcher     *matcher
}

// Name returns the table's declared name.
func (t *Table) Name() string {
	return t.name
}

// Transitions returns the declared transitions in declaration order.
// The returned slice is a copy.
func (t *Table) Transitions() []Transition {
	out := make([]Transition, len(t.transitions))
	copy(out, t.transitions)

	return out
}

// TransitionAt returns the transition at the given declaration index.
func (t *Table) TransitionAt(index int) Transition {
	return t.transitions[index]
}

// States returns every distinct state kind mentioned by the table, in
// first-occurrence order.
func (t *Table) States() []StateKind {
	return t.states.Values()
}

// Events returns every distinct event kind mentioned by the table, in
// first-occurrence order.
func (t *Table) Events() []EventKind {
	return t.events.Values()
}

// TerminalStates returns the state kinds marked terminal.
func (t *Table) TerminalStates() []StateKind {
	return t.terminal.Values()
}

// HasState reports whether kind is in the derived state set.
func (t *Table) HasState(kind StateKind) bool {
	return t.states.Contains(kind)
}

// IsTerminal reports whether kind is marked terminal.
func (t *Table) IsTerminal(kind StateKind) bool {
	return t.terminal.Contains(kind)
}

// Match resolves a (state, event) pair to the index of the first declared
// matching transition. See matcher for the tie-break policy.
func (t *Table) Match(state StateKind, event EventKind) (int, bool) {
	return t.matcher.Match(state, event).Get()
}

// factory returns the registered factory for kind. Build guarantees one
// exists for every derived state kind.
func (t *Table) factory(kind StateKind) StateFactory {
	return t.factories[kind]
}

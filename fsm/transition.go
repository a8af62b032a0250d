package fsm

import "fmt"

// Transition is a declared rule mapping a (state, event) pair to a next
// state. Pure data; declaration order in a table is significant because the
// matcher resolves ambiguous pairs to the first declared rule.
type Transition struct {
	From StateKind
	On   EventKind
	To   StateKind
}

func (t Transition) String() string {
	return fmt.Sprintf("%s --%s--> %s", t.From, t.On, t.To)
}

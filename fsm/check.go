package fsm

import (
	"fmt"

	"github.com/amp-labs/amp-fsm/errors"
	"github.com/amp-labs/amp-fsm/kindset"
)

// checkExhaustive verifies that every non-terminal derived state has a
// transition for every derived event kind. All violations are reported in a
// single error so a table author can fix the whole coverage gap at once.
//
// Terminal states are exempt: an event arriving at a terminal state with no
// rule is the intended end-of-life signal, not an error. This check is what
// lets the engine treat "no transition found" on a non-terminal state as a
// programming defect rather than a runtime condition.
func checkExhaustive(
	transitions []Transition,
	states *kindset.Set[StateKind],
	events *kindset.Set[EventKind],
	terminal *kindset.Set[StateKind],
) error {
	covered := make(map[matchKey]bool, len(transitions))
	for _, t := range transitions {
		covered[matchKey{state: t.From, event: t.On}] = true
	}

	var errs errors.Collection

	for _, state := range states.Values() {
		if terminal.Contains(state) {
			continue
		}

		for _, event := range events.Values() {
			if !covered[matchKey{state: state, event: event}] {
				errs.Add(fmt.Errorf("%w: state %q has no transition for event %q",
					ErrIncompleteTable, state, event))
			}
		}
	}

	return errs.GetError()
}

package fsm

import "github.com/amp-labs/amp-fsm/kindset"

// deriveKinds computes the distinct state and event kinds mentioned by the
// transitions. States cover both the from and to positions, so a kind that
// only ever starts transitions (an initial state) is still included.
// First-occurrence order is preserved and duplicates collapse by nominal
// kind identity.
func deriveKinds(transitions []Transition) (*kindset.Set[StateKind], *kindset.Set[EventKind]) {
	states := kindset.New[StateKind]()
	events := kindset.New[EventKind]()

	for _, t := range transitions {
		states.Add(t.From, t.To)
		events.Add(t.On)
	}

	return states, events
}

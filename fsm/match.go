package fsm

import (
	"sync"

	"github.com/amp-labs/amp-fsm/optional"
)

// matchKey identifies a (state, event) lookup.
type matchKey struct {
	state StateKind
	event EventKind
}

// matcher resolves (state, event) pairs to the index of the first declared
// matching transition. Resolution is linear in table size and memoized: the
// table is immutable after Build, so a pair resolves the same way forever.
type matcher struct {
	transitions []Transition

	mu    sync.RWMutex
	cache map[matchKey]optional.Value[int]
}

func newMatcher(transitions []Transition) *matcher {
	return &matcher{
		transitions: transitions,
		cache:       make(map[matchKey]optional.Value[int]),
	}
}

// Match returns the index of the first transition whose (from, on) pair
// equals (state, event), or None when no rule matches. Duplicate pairs are a
// table-authoring ambiguity; the first declared always wins.
func (m *matcher) Match(state StateKind, event EventKind) optional.Value[int] {
	key := matchKey{state: state, event: event}

	m.mu.RLock()
	cached, hit := m.cache[key]
	m.mu.RUnlock()

	if hit {
		return cached
	}

	result := optional.None[int]()

	for i, t := range m.transitions {
		if t.From == state && t.On == event {
			result = optional.Some(i)

			break
		}
	}

	m.mu.Lock()
	m.cache[key] = result
	m.mu.Unlock()

	return result
}

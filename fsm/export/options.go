package export

// Options configures diagram output.
type Options struct {
	// Direction controls diagram flow: "TD" (top-down) or "LR" (left-right).
	Direction string

	// Initial, when set, draws an entry marker into this state.
	Initial string

	// Fence wraps Mermaid output in a markdown code fence.
	Fence bool
}

// DefaultOptions returns sensible defaults for diagram output.
func DefaultOptions() Options {
	return Options{
		Direction: "TD",
	}
}

// WithDirection sets the diagram direction.
func (o Options) WithDirection(direction string) Options {
	o.Direction = direction

	return o
}

// WithInitial sets the state the entry marker points at.
func (o Options) WithInitial(initial string) Options {
	o.Initial = initial

	return o
}

// WithFence wraps Mermaid output in a markdown code fence.
func (o Options) WithFence(fence bool) Options {
	o.Fence = fence

	return o
}

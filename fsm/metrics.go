package fsm

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dispatch outcome label values.
const (
	outcomeTransition = "transition"
	outcomeCompleted  = "completed"
	outcomeIgnored    = "ignored"
	outcomeInvariant  = "invariant_violation"
	outcomeError      = "error"
)

// Metric definitions with appropriate labels.
var (
	// transitionsTotal tracks executed transitions by table, edge and event.
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fsm_transitions_total",
		Help: "Total number of executed transitions by table, from_state, event, and to_state",
	}, []string{"table", "from_state", "event", "to_state"})

	// dispatchTotal tracks dispatch calls by outcome.
	dispatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fsm_dispatch_total",
		Help: "Total number of dispatched events by table and outcome",
	}, []string{"table", "outcome"})

	// completionsTotal tracks terminal-state completion signals.
	completionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fsm_completions_total",
		Help: "Total number of completion signals by table and terminal state",
	}, []string{"table", "state"})

	// chainDepth tracks the peak depth of self-triggered event chains per
	// external dispatch.
	chainDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fsm_event_chain_depth",
		Help:    "Peak depth of synchronously chained events per external dispatch",
		Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128},
	}, []string{"table"})
)

func sanitizeTable(name string) string {
	if name == "" {
		return "unknown"
	}

	return name
}

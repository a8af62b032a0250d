// Package export renders a built transition table as a diagram. Because only
// validated tables exist, every diagram depicts a machine that passed the
// exhaustiveness gate; there is no way to draw an unchecked table.
//
// Two formats are supported: Mermaid stateDiagram-v2 and Graphviz DOT. Both
// emit exactly one edge per declared transition, labeled with its event kind,
// and one end marker per terminal state.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amp-labs/amp-fsm/fsm"
)

// ErrNilTable indicates export of a nil table.
var ErrNilTable = errors.New("table cannot be nil")

// Mermaid renders the table as a Mermaid state diagram with default options.
func Mermaid(table *fsm.Table) (string, error) {
	return MermaidWithOptions(table, DefaultOptions())
}

// MermaidWithOptions renders the table as a Mermaid state diagram.
func MermaidWithOptions(table *fsm.Table, opts Options) (string, error) {
	if table == nil {
		return "", ErrNilTable
	}

	var sb strings.Builder

	if opts.Fence {
		sb.WriteString("```mermaid\n")
	}

	direction := opts.Direction
	if direction == "" {
		direction = DefaultOptions().Direction
	}

	sb.WriteString("stateDiagram-v2\n")
	sb.WriteString(fmt.Sprintf("    direction %s\n", direction))

	if opts.Initial != "" {
		sb.WriteString(fmt.Sprintf("    [*] --> %s\n", opts.Initial))
	}

	for _, t := range table.Transitions() {
		sb.WriteString(fmt.Sprintf("    %s --> %s: %s\n", t.From, t.To, t.On))
	}

	for _, kind := range table.TerminalStates() {
		sb.WriteString(fmt.Sprintf("    %s --> [*]\n", kind))
	}

	if opts.Fence {
		sb.WriteString("```\n")
	}

	return sb.String(), nil
}

// DOT renders the table as a Graphviz digraph with default options.
func DOT(table *fsm.Table) (string, error) {
	return DOTWithOptions(table, DefaultOptions())
}

// DOTWithOptions renders the table as a Graphviz digraph. Terminal states are
// drawn as double circles; all other states as plain circles.
func DOTWithOptions(table *fsm.Table, opts Options) (string, error) {
	if table == nil {
		return "", ErrNilTable
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("digraph %q {\n", table.Name()))

	if opts.Direction == "LR" {
		sb.WriteString("    rankdir=LR;\n")
	}

	sb.WriteString("    node [shape=circle];\n")

	for _, kind := range table.TerminalStates() {
		sb.WriteString(fmt.Sprintf("    %q [shape=doublecircle];\n", kind))
	}

	if opts.Initial != "" {
		sb.WriteString("    __start [shape=point];\n")
		sb.WriteString(fmt.Sprintf("    __start -> %q;\n", opts.Initial))
	}

	for _, t := range table.Transitions() {
		sb.WriteString(fmt.Sprintf("    %q -> %q [label=%q];\n", t.From, t.To, t.On))
	}

	sb.WriteString("}\n")

	return sb.String(), nil
}

package conn

import (
	"embed"
	"fmt"

	"github.com/amp-labs/amp-fsm/fsm"
)

//go:embed table.yaml
var tableFS embed.FS

// Table builds the connect machine's transition table from the embedded
// declaration and registers its state factories.
func Table() (*fsm.Table, error) {
	cfg, err := fsm.LoadConfigFS(tableFS, "table.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading connect table: %w", err)
	}

	return cfg.Builder().
		Register(StateStart, newStart).
		Register(StateConnecting, newConnecting).
		Register(StateConnected, newConnected).
		Register(StateFailed, newFailed).
		Build()
}

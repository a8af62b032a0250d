// Command fsmdemo runs the connect reference machine end to end and can
// render its transition table as a diagram.
//
//	fsmdemo                      run the machine to the connected state
//	fsmdemo -fail                route a failure event instead
//	fsmdemo -export mermaid      print the table as a Mermaid diagram
//	fsmdemo -export dot          print the table as a Graphviz digraph
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/amp-labs/amp-fsm/conn"
	"github.com/amp-labs/amp-fsm/fsm"
	"github.com/amp-labs/amp-fsm/fsm/export"
	"github.com/amp-labs/amp-fsm/telemetry"
)

func main() {
	var (
		exportFormat = flag.String("export", "", "print the table as a diagram instead of running: mermaid or dot")
		jsonLogs     = flag.Bool("json", false, "emit JSON logs")
		fail         = flag.Bool("fail", false, "route a failure event instead of a success")
		socket       = flag.Int("sock", 7, "socket descriptor delivered on success")
		host         = flag.String("host", "example.com", "host handed to the start state")
		reason       = flag.String("reason", "connection refused", "reason delivered on failure")
	)
	flag.Parse()

	setupLogging(*jsonLogs)

	if err := run(context.Background(), *exportFormat, *fail, *socket, *host, *reason); err != nil {
		slog.Error("fsmdemo failed", "error", err)
		os.Exit(1)
	}
}

func setupLogging(jsonLogs bool) {
	var handler slog.Handler
	if jsonLogs {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	} else {
		handler = slog.NewTextHandler(os.Stderr, nil)
	}

	slog.SetDefault(slog.New(handler))
}

func run(ctx context.Context, exportFormat string, fail bool, socket int, host, reason string) error {
	table, err := conn.Table()
	if err != nil {
		return err
	}

	if exportFormat != "" {
		return printDiagram(table, exportFormat)
	}

	cfg, err := telemetry.LoadConfigFromEnv("demo")
	if err != nil {
		return err
	}

	if err := telemetry.Initialize(ctx, cfg); err != nil {
		return err
	}

	defer func() {
		if err := telemetry.Shutdown(ctx); err != nil {
			slog.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	return runMachine(ctx, table, fail, socket, host, reason)
}

func printDiagram(table *fsm.Table, format string) error {
	opts := export.DefaultOptions().WithInitial(string(conn.StateStart))

	var (
		out string
		err error
	)

	switch format {
	case "mermaid":
		out, err = export.MermaidWithOptions(table, opts)
	case "dot":
		out, err = export.DOTWithOptions(table, opts)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}

	if err != nil {
		return err
	}

	fmt.Print(out)

	return nil
}

func runMachine(ctx context.Context, table *fsm.Table, fail bool, socket int, host, reason string) error {
	engine, err := fsm.New(table, fsm.NewContext(),
		fsm.WithCompletion(func(kind fsm.StateKind) {
			slog.Info("Machine settled", "state", kind)
		}))
	if err != nil {
		return err
	}

	if err := engine.Start(ctx, conn.StateStart, host); err != nil {
		return err
	}

	outcome := conn.Success(socket)
	if fail {
		outcome = conn.Failure(reason)
	}

	if err := engine.Dispatch(ctx, outcome); err != nil {
		return err
	}

	// A second dispatch at the terminal state surfaces the completion signal.
	if err := engine.Dispatch(ctx, outcome); err != nil {
		return err
	}

	current, _ := engine.Current()
	slog.Info("Final state", "state", current, "machine_id", engine.Context().MachineID)

	return nil
}

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/pkg/browser"
	"github.com/sarchlab/cdtrack/config"
	"github.com/sarchlab/cdtrack/session"
	"github.com/sarchlab/cdtrack/sim"
	"github.com/sarchlab/cdtrack/tracker"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Track cooldowns live, reading commands from standard input.",
	Long: `Run starts a real-time session. The engine advances one game second ` +
		`per tick interval, and commands typed on standard input start ` +
		`timers and edit the roster. Type "help" for the command list.`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

func init() {
	f := runCmd.Flags()
	f.Bool("monitor", false, "Serve the web monitor")
	f.Int("port", 0, "Port of the web monitor, 0 picks a free one")
	f.Bool("open", false, "Open the web monitor in a browser")
	f.String("record", "", "Record timer events into <record>.sqlite3")
	f.String("catalog", "", "YAML file overriding the game data")
	f.Bool("fetch", false, "Fetch the latest game data from Data Dragon")
	f.Duration("tick", 0, "Wall-clock duration of one game second")
	f.StringArray("unit", nil,
		"Roster entry as unit[,slot1,slot2,level,power], repeatable")
	f.BoolP("verbose", "v", false, "Log timer events to standard error")
	f.Bool("trace-engine", false, "Log every engine event to standard error")
	f.Bool("parallel-ids", false,
		"Use globally unique event IDs and timer tokens instead of counters")

	rootCmd.AddCommand(runCmd)
}

func runSession(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := applyRunFlags(cmd, &cfg); err != nil {
		return err
	}

	roster, err := rosterFromFlags(cmd)
	if err != nil {
		return err
	}

	if parallel, _ := cmd.Flags().GetBool("parallel-ids"); parallel {
		sim.UseParallelIDGenerator()
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	b := session.MakeBuilder().WithConfig(cfg)
	if roster != nil {
		b = b.WithRoster(roster)
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		b = b.WithLogger(log.New(cmd.ErrOrStderr(), "", log.LstdFlags))
	}

	if trace, _ := cmd.Flags().GetBool("trace-engine"); trace {
		b = b.WithEngineLogger(log.New(cmd.ErrOrStderr(), "engine ", 0))
	}

	s, err := b.Build(ctx)
	if err != nil {
		return err
	}
	defer s.Terminate()

	if cfg.RecordPath != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Recording to %s.sqlite3\n",
			cfg.RecordPath)
	}

	if open, _ := cmd.Flags().GetBool("open"); open && s.GetMonitor() != nil {
		if err := browser.OpenURL(s.GetMonitor().URL()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "cannot open browser: %v\n", err)
		}
	}

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx)
	}()

	console := NewConsole(s.GetTracker(), cmd.OutOrStdout())
	serveConsole(ctx, cmd.InOrStdin(), console, cmd.ErrOrStderr())

	cancel()

	return <-done
}

func applyRunFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()

	if f.Changed("monitor") {
		cfg.MonitorOn, _ = f.GetBool("monitor")
	}

	if f.Changed("port") {
		cfg.MonitorPort, _ = f.GetInt("port")
		cfg.MonitorOn = true
	}

	if f.Changed("open") {
		cfg.MonitorOn = true
	}

	if f.Changed("record") {
		cfg.RecordPath, _ = f.GetString("record")
	}

	if f.Changed("catalog") {
		cfg.CatalogFile, _ = f.GetString("catalog")
	}

	if f.Changed("fetch") {
		cfg.FetchCatalog, _ = f.GetBool("fetch")
	}

	if f.Changed("tick") {
		cfg.TickInterval, _ = f.GetDuration("tick")
	}

	return cfg.Validate()
}

func rosterFromFlags(cmd *cobra.Command) ([]tracker.UnitConfig, error) {
	entries, _ := cmd.Flags().GetStringArray("unit")
	if len(entries) == 0 {
		return nil, nil
	}

	roster := make([]tracker.UnitConfig, 0, len(entries))
	for _, entry := range entries {
		u, err := parseUnitConfig(entry)
		if err != nil {
			return nil, err
		}

		roster = append(roster, u)
	}

	return roster, nil
}

// serveConsole feeds lines from in to the console until in is exhausted,
// the operator quits, or ctx is done.
func serveConsole(
	ctx context.Context,
	in io.Reader,
	console *Console,
	errOut io.Writer,
) {
	lines := make(chan string)
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}

			err := console.Exec(line)
			if errors.Is(err, errQuit) {
				return
			}

			if err != nil {
				fmt.Fprintf(errOut, "error: %v\n", err)
			}
		}
	}
}

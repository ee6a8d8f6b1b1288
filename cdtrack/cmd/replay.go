package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sarchlab/cdtrack/session"
	"github.com/sarchlab/cdtrack/sim"
	"github.com/sarchlab/cdtrack/tracker"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Replay a timed command script in virtual time.",
	Long: `Replay runs a script of "@<second> <command>" lines without waiting ` +
		`for the wall clock. Each command runs when the engine reaches its ` +
		`second, after which the status log is printed. Use "-" to read the ` +
		`script from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: replayScript,
}

func init() {
	f := replayCmd.Flags()
	f.Int("until", -1, "Keep running until this second and print every unit")
	f.String("record", "", "Record timer events into <record>.sqlite3")
	f.String("catalog", "", "YAML file overriding the game data")
	f.StringArray("unit", nil,
		"Roster entry as unit[,slot1,slot2,level,power], repeatable")

	rootCmd.AddCommand(replayCmd)
}

func replayScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("record") {
		cfg.RecordPath, _ = f.GetString("record")
	}

	if f.Changed("catalog") {
		cfg.CatalogFile, _ = f.GetString("catalog")
	}

	roster, err := rosterFromFlags(cmd)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		in = file
	}

	b := session.MakeBuilder().
		WithConfig(cfg).
		WithIDGenerator(sim.NewSequentialIDGenerator()).
		WithoutMonitoring()
	if roster != nil {
		b = b.WithRoster(roster)
	}

	s, err := b.Build(context.Background())
	if err != nil {
		return err
	}
	defer s.Terminate()

	if err := Replay(in, s, cmd.OutOrStdout()); err != nil {
		return err
	}

	until, _ := f.GetInt("until")
	if until < 0 {
		return nil
	}

	return finishReplay(s, until, cmd.OutOrStdout())
}

// Replay executes every line of the script at its engine second. Lines must
// be ordered by second. After each command the line
// "@<second> [<game clock>] <status log>" is written to out.
func Replay(script io.Reader, s *session.Session, out io.Writer) error {
	console := NewConsole(s.GetTracker(), out)
	scanner := bufio.NewScanner(script)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		at, command, ok, err := parseScriptLine(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		if !ok {
			continue
		}

		now := s.GetEngine().CurrentTime()
		if at < now {
			return fmt.Errorf("line %d: second %d is before %d",
				lineNo, at, now)
		}

		if err := s.AdvanceTo(at); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		err = console.Exec(command)
		if errors.Is(err, errQuit) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		printStatus(s, out)
	}

	return scanner.Err()
}

func finishReplay(s *session.Session, until int, out io.Writer) error {
	at := sim.VTimeInSec(until)
	if at < s.GetEngine().CurrentTime() {
		return fmt.Errorf("--until %d is before the end of the script", until)
	}

	if err := s.AdvanceTo(at); err != nil {
		return err
	}

	printStatus(s, out)

	return NewConsole(s.GetTracker(), out).Exec("show")
}

func printStatus(s *session.Session, out io.Writer) {
	t := s.GetTracker()
	fmt.Fprintf(out, "@%d [%s] %s\n",
		s.GetEngine().CurrentTime(),
		tracker.FormatClock(t.Elapsed()),
		t.LogText())
}

// parseScriptLine splits "@<second> <command>". Blank lines and comments
// report ok as false.
func parseScriptLine(line string) (
	at sim.VTimeInSec,
	command string,
	ok bool,
	err error,
) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return 0, "", false, nil
	}

	if !strings.HasPrefix(line, "@") {
		return 0, "", false, fmt.Errorf("%w: @<second> <command>", ErrUsage)
	}

	stamp, command, _ := strings.Cut(line[1:], " ")

	second, err := strconv.ParseUint(stamp, 10, 64)
	if err != nil {
		return 0, "", false, fmt.Errorf("%w: bad second %q", ErrUsage, stamp)
	}

	command = strings.TrimSpace(command)
	if command == "" {
		return 0, "", false, fmt.Errorf("%w: missing command", ErrUsage)
	}

	return sim.VTimeInSec(second), command, true, nil
}

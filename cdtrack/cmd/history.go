package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/sarchlab/cdtrack/datarecording"
	"github.com/sarchlab/cdtrack/tracing"
	"github.com/sarchlab/cdtrack/tracker"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <recording.sqlite3>",
	Short: "Print the timer events of a recorded session.",
	Args:  cobra.ExactArgs(1),
	RunE:  printHistory,
}

func init() {
	f := historyCmd.Flags()
	f.Int("unit", 0, "Only events of this unit, numbered from 1")
	f.String("event", "", "Only events of this kind "+
		"(started, cancelled, ready, log_cleared)")
	f.Int("limit", 0, "Print at most this many events")
	f.Bool("upgrades", false, "Print the slot upgrades instead")

	rootCmd.AddCommand(historyCmd)
}

func printHistory(cmd *cobra.Command, args []string) error {
	reader, err := datarecording.NewReader(args[0])
	if err != nil {
		return err
	}
	defer reader.Close()

	reader.MapTable(tracing.TimerEventTable, tracing.TimerEventEntry{})
	reader.MapTable(tracing.SlotUpgradeTable, tracing.SlotUpgradeEntry{})

	params, err := historyParams(cmd)
	if err != nil {
		return err
	}

	table := tracing.TimerEventTable
	if upgrades, _ := cmd.Flags().GetBool("upgrades"); upgrades {
		table = tracing.SlotUpgradeTable
	}

	rows, total, err := reader.Query(cmd.Context(), table, params)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if table == tracing.SlotUpgradeTable {
		printUpgradeRows(out, rows)
	} else {
		printTimerEventRows(out, rows)
	}

	if len(rows) < total {
		fmt.Fprintf(out, "%d of %d events shown\n", len(rows), total)
	}

	return nil
}

func historyParams(cmd *cobra.Command) (datarecording.QueryParams, error) {
	f := cmd.Flags()
	params := datarecording.QueryParams{OrderBy: "EngineTime, rowid"}

	var where []string

	if f.Changed("unit") {
		unit, _ := f.GetInt("unit")
		if unit < 1 {
			return params, fmt.Errorf("%w: %d", tracker.ErrUnknownUnitRef, unit)
		}

		where = append(where, "UnitIndex = ?")
		params.Args = append(params.Args, unit-1)
	}

	if event, _ := f.GetString("event"); event != "" {
		where = append(where, "Event = ?")
		params.Args = append(params.Args, event)
	}

	params.Where = strings.Join(where, " AND ")
	params.Limit, _ = f.GetInt("limit")

	return params, nil
}

func printTimerEventRows(out io.Writer, rows []any) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CLOCK\tEVENT\t#\tUNIT\tSLOT\tABILITY\tDURATION\tLEFT\tLOG")

	for _, row := range rows {
		e := row.(*tracing.TimerEventEntry)
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%d\t%d\t%s\n",
			tracker.FormatClock(e.Elapsed), e.Event, e.UnitIndex+1, e.Unit,
			e.Slot, e.Ability, e.Duration, e.Remaining, e.LogText)
	}

	_ = w.Flush()
}

func printUpgradeRows(out io.Writer, rows []any) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CLOCK\t#\tUNIT\tSLOT\tFROM\tTO")

	for _, row := range rows {
		e := row.(*tracing.SlotUpgradeEntry)
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
			tracker.FormatClock(e.Elapsed), e.UnitIndex+1, e.Unit,
			e.Slot, e.From, e.To)
	}

	_ = w.Flush()
}

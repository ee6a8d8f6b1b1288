package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sarchlab/cdtrack/catalog"
	"github.com/sarchlab/cdtrack/config"
	"github.com/sarchlab/cdtrack/session"
	"github.com/sarchlab/cdtrack/tracker"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [unit]",
	Short: "Print the game data the tracker uses.",
	Long: `Catalog prints the base durations of the generic abilities. Given a ` +
		`unit, it prints the ultimate cooldowns of the unit instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: printCatalog,
}

func init() {
	f := catalogCmd.Flags()
	f.String("file", "", "YAML file overriding the game data")
	f.Bool("fetch", false, "Fetch the latest game data from Data Dragon")
	f.Int("power", 0, "Power stat applied to the ultimate cooldowns")
	f.Bool("yaml", false, "Dump the whole table as YAML")

	rootCmd.AddCommand(catalogCmd)
}

func printCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("file") {
		cfg.CatalogFile, _ = f.GetString("file")
	}

	if f.Changed("fetch") {
		cfg.FetchCatalog, _ = f.GetBool("fetch")
	}

	cat, err := loadCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if dump, _ := f.GetBool("yaml"); dump {
		data, err := cat.Marshal()
		if err != nil {
			return err
		}

		_, err = out.Write(data)

		return err
	}

	if len(args) == 0 {
		printAbilities(out, cat, cfg)
		return nil
	}

	power, _ := f.GetInt("power")
	if err := tracker.ValidatePowerStat(power); err != nil {
		return err
	}

	printUltimate(out, cat, args[0], power)

	return nil
}

// loadCatalog resolves the game data the same way a session does.
func loadCatalog(ctx context.Context, cfg config.Config) (*catalog.Table, error) {
	cfg.RecordPath = ""

	s, err := session.MakeBuilder().
		WithConfig(cfg).
		WithoutMonitoring().
		Build(ctx)
	if err != nil {
		return nil, err
	}
	defer s.Terminate()

	return s.GetCatalog(), nil
}

func printAbilities(out io.Writer, cat *catalog.Table, cfg config.Config) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ABILITY\tSECONDS")

	for _, name := range cat.AbilityNames() {
		fmt.Fprintf(w, "%s\t%d\n", name, cat.BaseDuration(name))
	}

	fmt.Fprintf(w, "(other)\t%d\n", cat.BaseDuration(""))
	_ = w.Flush()

	fmt.Fprintf(out, "\n%s replaces %s at %s; its duration is %d at level 1 "+
		"and %d at level %d.\n",
		cfg.UpgradeTo, cfg.UpgradeFrom,
		tracker.FormatClock(cfg.UpgradeThreshold),
		tracker.UpgradedTeleportDuration(tracker.MinLevel),
		tracker.UpgradedTeleportDuration(tracker.MaxLevel), tracker.MaxLevel)
	fmt.Fprintf(out, "%d units known", len(cat.UnitIDs()))
	if cat.DataDragonVersion != "" {
		fmt.Fprintf(out, " (Data Dragon %s)", cat.DataDragonVersion)
	}
	fmt.Fprintln(out, ".")
}

func printUltimate(out io.Writer, cat *catalog.Table, name string, power int) {
	unitID := catalog.InternalName(name)
	if !cat.HasUnit(unitID) {
		fmt.Fprintf(out, "%s is not known, using fallback cooldowns.\n", name)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tLEVELS\tBASE\tSECONDS")

	for rank, levels := range []string{"1-10", "11-15", "16-18"} {
		base, _ := cat.UltimateCooldown(unitID, rank+1)
		level := []int{1, 11, 16}[rank]
		d, _ := tracker.UltimateDuration(cat, unitID, level, power)
		fmt.Fprintf(w, "%d\t%s\t%g\t%d\n", rank+1, levels, base, d)
	}

	_ = w.Flush()
}

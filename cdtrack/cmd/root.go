// Package cmd provides the command-line interface of cdtrack.
package cmd

import (
	"github.com/sarchlab/cdtrack/config"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cdtrack",
	Short: "cdtrack tracks ability cooldowns of a roster of units.",
	Long: `cdtrack tracks ability cooldowns of a roster of units against a ` +
		`game clock. It can run live from the console and a web monitor, ` +
		`or replay a timed command script.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringSlice("env", []string{".env"},
		"Environment files to read "+config.EnvPrefix+"* settings from")
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFiles, _ := cmd.Flags().GetStringSlice("env")
	return config.Load(envFiles...)
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

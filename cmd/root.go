package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagIgnoreConfig bool
	flagDebug        bool
)

var rootCmd = &cobra.Command{
	Use:   "starsite",
	Short: "Generate a static franchise site: landing page, character catalog and one page per character",
	Long: `starsite searches the web and Wikipedia for a franchise, scrapes a ranked
character list and writes HTML pages (.md files) into an output folder.

Settings come from the active config profile (see "starsite config"),
overridden by flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log every request and written file")
	rootCmd.PersistentFlags().BoolVar(&flagIgnoreConfig, "ignore-config", false, "use built-in defaults and CLI flags only")
}

// Execute runs the CLI; any command error exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

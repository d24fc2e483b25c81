package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "seqview",
	Short: "Timeline sequencer viewer and layout inspector",
	Long: `seqview lays out timeline projects with an adaptive frame ruler:
  - view a project in an interactive Gio window
  - dump the draw commands of one layout pass
  - inspect the ruler ticks chosen for a frame range and zoom

Examples:
  seqview view intro.toml                    # Open a project in a window
  seqview dump intro.toml --width 1200       # Print the draw list
  seqview ticks --min 3 --max 97 --fpw 10    # Show ruler decimation
  seqview init demo.toml --tracks 8          # Write a sample project`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

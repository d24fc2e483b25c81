package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSeq/internal/ui"
	"github.com/OpenTraceLab/OpenTraceSeq/pkg/sequencer"
)

var (
	viewFilter  string
	viewMatcher string
	viewOptions string

	viewSettingsPath string
)

var viewCmd = &cobra.Command{
	Use:   "view [project.toml]",
	Short: "Open a project in the sequencer window",
	Long: `Open a project in an interactive window. Without a file a demo
project is shown. Press Ctrl+R to reload the file from disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	addLayoutFlags(viewCmd)
	viewCmd.Flags().StringVar(&viewFilter, "filter", "", "initial track filter")
	viewCmd.Flags().StringVar(&viewMatcher, "match", "Contains", "filter matcher (Contains, Whole Word, Regex)")
	viewCmd.Flags().StringVar(&viewOptions, "options", "", "sequencer options, comma separated")
	viewCmd.Flags().StringVar(&viewSettingsPath, "settings", "", "viewer settings file (default in the user config directory)")
}

func runView(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	settings := viewSettings(cmd)
	state, err := viewState(cmd, args, settings)
	if err != nil {
		return err
	}
	logger.Info("opening project", "name", state.Project().Name,
		"range", state.Project().Range, "tracks", state.Project().ItemCount())
	return ui.Run(state, settings, logger)
}

// viewSettings loads the saved viewer preferences. Failures are logged and
// the defaults used.
func viewSettings(cmd *cobra.Command) *ui.Settings {
	logger := loggerFromContext(cmd.Context())
	path := viewSettingsPath
	if path == "" {
		var err error
		if path, err = ui.DefaultSettingsPath(); err != nil {
			logger.Warn("no settings directory", "err", err)
		}
	}
	settings, err := ui.LoadSettings(path)
	if err != nil {
		logger.Warn("ignoring settings", "path", path, "err", err)
	}
	logger.Debug("settings", "path", settings.Path(), "matcher", settings.Matcher)
	return settings
}

// viewState builds the viewer state from the command line without opening
// a window. A matcher given on the command line wins over the saved one.
func viewState(cmd *cobra.Command, args []string, settings *ui.Settings) (*ui.AppState, error) {
	p, path, err := loadProject(cmd, args)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	opts, err := sequencer.ParseOptions(viewOptions)
	if err != nil {
		return nil, err
	}

	state := ui.NewState(p, path)
	state.SetOptions(opts)
	matcher := viewMatcher
	if !cmd.Flags().Changed("match") && settings != nil && settings.Matcher != "" {
		matcher = settings.Matcher
	}
	if err := state.Search().SelectName(matcher); err != nil {
		return nil, err
	}
	state.SetQuery(viewFilter)
	if err := state.LastError(); err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", viewFilter, err)
	}
	return state, nil
}

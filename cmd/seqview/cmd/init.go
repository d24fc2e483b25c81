package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSeq/pkg/project"
)

var (
	initTracks int
	initFrames uint32
	initForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init <project.toml>",
	Short: "Write a sample project file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().IntVar(&initTracks, "tracks", 6, "number of tracks")
	initCmd.Flags().Uint32Var(&initFrames, "frames", 100, "last frame")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := args[0]
	if initTracks < 0 {
		return fmt.Errorf("invalid --tracks %d: must not be negative", initTracks)
	}
	if !initForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	p := project.Demo(initTracks, initFrames)
	if err := project.Save(path, p); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}
	loggerFromContext(cmd.Context()).Info("wrote project", "path", path, "tracks", initTracks)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d tracks, frames %s)\n", path, initTracks, p.Range)
	return nil
}

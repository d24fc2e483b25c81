package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSeq/pkg/project"
	"github.com/OpenTraceLab/OpenTraceSeq/pkg/sequencer"
)

// Layout overrides shared by view and dump
var (
	framePixelWidth float32
	legendWidth     float32
	itemHeight      float32
	demoTracks      int
	demoFrames      uint32
)

func addLayoutFlags(c *cobra.Command) {
	def := sequencer.DefaultConfig()
	c.Flags().Float32Var(&framePixelWidth, "fpw", def.FramePixelWidth, "pixels per frame")
	c.Flags().Float32Var(&legendWidth, "legend", def.LegendWidth, "legend column width in pixels")
	c.Flags().Float32Var(&itemHeight, "row-height", def.ItemHeight, "track row height in pixels")
	c.Flags().IntVar(&demoTracks, "demo-tracks", 6, "number of tracks in the demo project")
	c.Flags().Uint32Var(&demoFrames, "demo-frames", 100, "last frame of the demo project")
}

// loadProject reads the project at args[0], or builds the demo project when
// no path is given. Layout flags set on the command line override the file.
func loadProject(c *cobra.Command, args []string) (*project.Project, string, error) {
	var (
		p    *project.Project
		path string
	)
	if len(args) > 0 {
		path = args[0]
		var err error
		if p, err = project.Load(path); err != nil {
			return nil, "", err
		}
	} else {
		if demoTracks < 0 {
			return nil, "", fmt.Errorf("invalid --demo-tracks %d: must not be negative", demoTracks)
		}
		p = project.Demo(demoTracks, demoFrames)
	}

	cfg := p.Config()
	if c.Flags().Changed("fpw") {
		cfg.FramePixelWidth = framePixelWidth
	}
	if c.Flags().Changed("legend") {
		cfg.LegendWidth = legendWidth
	}
	if c.Flags().Changed("row-height") {
		cfg.ItemHeight = itemHeight
	}
	p.SetConfig(cfg)
	return p, path, nil
}

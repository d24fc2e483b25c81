package cmd

import (
	"fmt"

	"gioui.org/f32"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSeq/pkg/project"
	"github.com/OpenTraceLab/OpenTraceSeq/pkg/sequencer"
)

var (
	ticksMin    uint32
	ticksMax    uint32
	ticksFPW    float32
	ticksWidth  float32
	ticksLegend float32
)

var ticksCmd = &cobra.Command{
	Use:   "ticks",
	Short: "Show the ruler ticks for a frame range",
	Long: `Print the decimation chosen for a frame pixel width and the ticks
that land on a canvas of the given width.`,
	Args: cobra.NoArgs,
	RunE: runTicks,
}

func init() {
	rootCmd.AddCommand(ticksCmd)
	def := sequencer.DefaultConfig()
	ticksCmd.Flags().Uint32Var(&ticksMin, "min", 0, "first frame")
	ticksCmd.Flags().Uint32Var(&ticksMax, "max", 100, "last frame")
	ticksCmd.Flags().Float32Var(&ticksFPW, "fpw", def.FramePixelWidth, "pixels per frame")
	ticksCmd.Flags().Float32Var(&ticksWidth, "width", 1200, "canvas width in pixels")
	ticksCmd.Flags().Float32Var(&ticksLegend, "legend", def.LegendWidth, "legend column width in pixels")
}

func runTicks(cmd *cobra.Command, args []string) error {
	r := sequencer.TimeRange{Min: ticksMin, Max: ticksMax}
	if r.Max < r.Min {
		return fmt.Errorf("%w: min %d > max %d", project.ErrInvalidRange, r.Min, r.Max)
	}

	cfg := sequencer.DefaultConfig()
	cfg.FramePixelWidth = ticksFPW
	cfg.LegendWidth = ticksLegend
	canvas := sequencer.Canvas{Size: f32.Pt(ticksWidth, cfg.ItemHeight)}

	frame := sequencer.Draw(project.New("ticks", r), canvas, cfg, 0)
	d := frame.Decimation

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Frames %s at %g px/frame", r, cfg.FramePixelWidth)))
	fmt.Fprintln(out, field("Period", d.ModFrameCount))
	fmt.Fprintln(out, field("Half period", d.HalfModFrameCount))
	fmt.Fprintln(out, field("Step", d.FrameStep))
	fmt.Fprintln(out, field("Visible", fmt.Sprintf("%d of %d frames", frame.Zoom.VisibleFrameCount, frame.Zoom.FrameCount)))
	fmt.Fprintln(out)

	for _, t := range frame.Ticks {
		line := fmt.Sprintf("%6d  %-5s  x=%g", t.Frame, t.Kind, t.X)
		switch t.Kind {
		case sequencer.TickMajor:
			line = majorStyle.Render(line)
		case sequencer.TickMinor:
			line = minorStyle.Render(line)
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

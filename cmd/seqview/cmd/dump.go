package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gioui.org/f32"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceSeq/pkg/sequencer"
)

var (
	dumpWidth   float32
	dumpHeight  float32
	dumpX       float32
	dumpY       float32
	dumpFocused bool
	dumpJSON    bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump [project.toml]",
	Short: "Print the draw list of one layout pass",
	Long: `Lay out a project on a canvas of the given size and print the draw
primitives, hit regions and ruler ticks. Without a file the demo project
is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	addLayoutFlags(dumpCmd)
	dumpCmd.Flags().Float32Var(&dumpWidth, "width", 800, "canvas width in pixels")
	dumpCmd.Flags().Float32Var(&dumpHeight, "height", 200, "canvas height in pixels")
	dumpCmd.Flags().Float32Var(&dumpX, "x", 0, "canvas origin x")
	dumpCmd.Flags().Float32Var(&dumpY, "y", 0, "canvas origin y")
	dumpCmd.Flags().BoolVar(&dumpFocused, "focused", false, "lay out as if the window had focus")
	dumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "output JSON")
}

func runDump(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	p, _, err := loadProject(cmd, args)
	if err != nil {
		return fmt.Errorf("failed to load project: %w", err)
	}

	canvas := sequencer.Canvas{
		Pos:     f32.Pt(dumpX, dumpY),
		Size:    f32.Pt(dumpWidth, dumpHeight),
		Focused: dumpFocused,
	}
	frame := sequencer.Draw(p, canvas, p.Config(), 0)
	logger.Debug("layout", "primitives", frame.Len(), "ticks", len(frame.Ticks))

	out := cmd.OutOrStdout()
	if dumpJSON {
		return writeFrameJSON(out, frame)
	}
	writeFrame(out, p.Name, p.Range, frame)
	return nil
}

func writeFrame(w io.Writer, name string, r sequencer.TimeRange, f *sequencer.Frame) {
	fmt.Fprintln(w, titleStyle.Render(name))
	fmt.Fprintln(w, field("Frames", r))
	fmt.Fprintln(w, field("Decimation", fmt.Sprintf("mod=%d half=%d step=%d",
		f.Decimation.ModFrameCount, f.Decimation.HalfModFrameCount, f.Decimation.FrameStep)))
	fmt.Fprintln(w, field("Ticks", len(f.Ticks)))
	fmt.Fprintln(w, field("Primitives", f.Len()))
	fmt.Fprintln(w)

	for _, reg := range f.Regions {
		fmt.Fprintf(w, "region %s (%g,%g)-(%g,%g)\n", reg.ID, reg.Min.X, reg.Min.Y, reg.Max.X, reg.Max.Y)
	}
	for _, p := range f.Primitives {
		fmt.Fprintln(w, p)
	}
}

type pointJSON [2]float32

type primitiveJSON struct {
	Kind      string    `json:"kind"`
	Min       pointJSON `json:"min"`
	Max       pointJSON `json:"max,omitempty"`
	Color     string    `json:"color"`
	Thickness float32   `json:"thickness,omitempty"`
	Text      string    `json:"text,omitempty"`
}

type regionJSON struct {
	ID  string    `json:"id"`
	Min pointJSON `json:"min"`
	Max pointJSON `json:"max"`
}

type tickJSON struct {
	Frame uint32  `json:"frame"`
	Kind  string  `json:"kind"`
	X     float32 `json:"x"`
}

type frameJSON struct {
	Decimation sequencer.Decimation `json:"decimation"`
	Zoom       sequencer.Zoom       `json:"zoom"`
	Regions    []regionJSON         `json:"regions"`
	Ticks      []tickJSON           `json:"ticks"`
	Primitives []primitiveJSON      `json:"primitives"`
}

func pointOf(p f32.Point) pointJSON { return pointJSON{p.X, p.Y} }

func writeFrameJSON(w io.Writer, f *sequencer.Frame) error {
	out := frameJSON{
		Decimation: f.Decimation,
		Zoom:       f.Zoom,
		Regions:    make([]regionJSON, 0, len(f.Regions)),
		Ticks:      make([]tickJSON, 0, len(f.Ticks)),
		Primitives: make([]primitiveJSON, 0, f.Len()),
	}
	for _, r := range f.Regions {
		out.Regions = append(out.Regions, regionJSON{ID: r.ID, Min: pointOf(r.Min), Max: pointOf(r.Max)})
	}
	for _, t := range f.Ticks {
		out.Ticks = append(out.Ticks, tickJSON{Frame: t.Frame, Kind: t.Kind.String(), X: t.X})
	}
	for _, p := range f.Primitives {
		pj := primitiveJSON{
			Kind:      p.Kind.String(),
			Min:       pointOf(p.Min),
			Color:     p.Color.String(),
			Thickness: p.Thickness,
			Text:      p.Text,
		}
		if p.Kind != sequencer.KindText {
			pj.Max = pointOf(p.Max)
		}
		out.Primitives = append(out.Primitives, pj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

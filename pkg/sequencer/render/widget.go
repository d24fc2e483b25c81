package render

import (
	"gioui.org/layout"

	"github.com/OpenTraceLab/OpenTraceSeq/pkg/sequencer"
)

// Widget is a sequencer laid out with Gio. It keeps no layout state of its
// own; Layout recomputes everything from the model each frame.
type Widget struct {
	Config   sequencer.Config
	Options  sequencer.Options
	Renderer *Renderer

	hits Hits
	last *sequencer.Frame
}

// NewWidget returns a widget with the default layout and renderer.
func NewWidget() *Widget {
	return &Widget{
		Config:   sequencer.DefaultConfig(),
		Renderer: NewRenderer(),
	}
}

// Layout draws seq into the maximum constraints of gtx. focused is the
// focus state of the hosting window and is written back into seq.
func (w *Widget) Layout(gtx layout.Context, seq sequencer.Sequencer, focused bool) layout.Dimensions {
	if w.Renderer == nil {
		w.Renderer = NewRenderer()
	}
	canvas := CanvasOf(gtx, focused)
	frame := sequencer.Draw(seq, canvas, w.Config, w.Options)
	w.Renderer.Paint(gtx, &frame.DrawList)
	w.hits.Add(gtx, frame.Regions)
	w.last = frame
	return layout.Dimensions{Size: gtx.Constraints.Max}
}

// Pressed reports whether the region id was pressed since the last call.
func (w *Widget) Pressed(gtx layout.Context, id string) bool {
	return w.hits.Pressed(gtx, id)
}

// LastFrame returns the frame computed by the most recent Layout, or nil.
func (w *Widget) LastFrame() *sequencer.Frame {
	return w.last
}

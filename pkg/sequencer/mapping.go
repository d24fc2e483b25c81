package sequencer

import (
	"math"

	"gioui.org/f32"
)

// Canvas is the screen area the widget lays out into, plus the focus state
// of the window it lives in.
type Canvas struct {
	Pos     f32.Point
	Size    f32.Point
	Focused bool
}

// PixelX returns the screen x of frame on canvas. Every primitive takes its
// horizontal position from here, so ticks, grid lines and labels of the same
// frame always line up.
func (c Config) PixelX(canvas Canvas, frame uint32) float32 {
	return canvas.Pos.X + c.LegendWidth + float32(frame)*c.FramePixelWidth
}

// Visible reports whether x lies on the timeline part of canvas, between the
// end of the legend column and the right edge, both inclusive.
func (c Config) Visible(canvas Canvas, x float32) bool {
	return x >= canvas.Pos.X+c.LegendWidth && x <= canvas.Pos.X+canvas.Size.X
}

// timelineWidth is the width left for frames once the legend is taken.
func (c Config) timelineWidth(canvas Canvas) float32 {
	return canvas.Size.X - c.LegendWidth
}

// lastVisibleFrame returns the highest frame whose x is still on canvas, and
// false when no frame is visible at all.
func (c Config) lastVisibleFrame(canvas Canvas) (uint32, bool) {
	w := c.timelineWidth(canvas)
	if w < 0 || !(c.FramePixelWidth > 0) {
		return 0, false
	}
	last := math.Floor(float64(w / c.FramePixelWidth))
	if last >= math.MaxUint32 {
		return math.MaxUint32, true
	}
	return uint32(last), true
}

// Zoom describes how much of the frame range fits on the canvas. It sizes a
// scrollbar thumb and does not move anything else.
type Zoom struct {
	VisibleFrameCount uint32
	FrameCount        uint32
	BarWidthRatio     float32
	BarWidthPixels    float32
}

// ZoomFor computes the zoom metrics of r on canvas.
func (c Config) ZoomFor(canvas Canvas, r TimeRange) Zoom {
	z := Zoom{FrameCount: r.FrameCount()}
	if last, ok := c.lastVisibleFrame(canvas); ok {
		z.VisibleFrameCount = last
	}
	z.BarWidthRatio = float32(math.Min(float64(z.VisibleFrameCount)/float64(z.FrameCount), 1))
	z.BarWidthPixels = z.BarWidthRatio * c.timelineWidth(canvas)
	return z
}

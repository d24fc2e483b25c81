// Package sequencer lays out a timeline sequencer widget.
//
// A Sequencer supplies a frame range, an item count, a focus flag and a
// Style. Draw maps that state onto a canvas and returns the ordered list of
// primitives (filled rectangles, lines and text) a host toolkit replays to
// paint the widget. Nothing is retained between calls: every frame the host
// calls Draw again with the current canvas size and the engine recomputes the
// whole geometry.
//
// # Layout
//
// The canvas is split into a legend column of Config.LegendWidth pixels on the
// left and a timeline on the right. Frame f sits at
//
//	x = canvas.X + LegendWidth + f*FramePixelWidth
//
// and anything whose x falls outside [canvas.X+LegendWidth, canvas.X+width]
// is dropped, so the number of primitives depends on the canvas, not the
// length of the frame range.
//
// # Ruler ticks
//
// Ticks are decimated so that a labelled period is at least 150 pixels wide.
// Decimate starts at a period of 10 frames with a stride of 1 and doubles both
// until the period is wide enough. Frames on the period get a tall tick and a
// number, frames on the half period a medium tick, the rest a short one. The
// first and last frame of the range are always labelled.
//
// The rendering of a DrawList with Gio lives in the render subpackage.
package sequencer

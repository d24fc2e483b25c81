package sequencer

import (
	"fmt"
	"image/color"
)

// Color is a packed 0xAARRGGBB color.
type Color uint32

// NRGBA unpacks c for Gio paint operations.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		A: uint8(c >> 24),
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("0x%08x", uint32(c))
}

// ColorWhite is used for item labels in the legend column.
const ColorWhite Color = 0xffffffff

// Style is the color palette of a sequencer. The zero value is all
// transparent; start from DefaultStyle and override with the With methods,
// which return a modified copy.
type Style struct {
	header    Color
	bg        Color
	top       Color
	headTick  Color
	bodyTick  Color
	frameNum  Color
	slotColor [2]Color
}

// DefaultStyle returns the stock dark palette.
func DefaultStyle() Style {
	return Style{
		header:    0xffff0000,
		bg:        0xff242424,
		top:       0xff3d3837,
		headTick:  0xff606060,
		bodyTick:  0x30606060,
		frameNum:  0xffbbbbbb,
		slotColor: [2]Color{0xff3a3636, 0xff413d3d},
	}
}

func (s Style) WithHeaderColor(c Color) Style   { s.header = c; return s }
func (s Style) WithBgColor(c Color) Style       { s.bg = c; return s }
func (s Style) WithTopColor(c Color) Style      { s.top = c; return s }
func (s Style) WithHeadTickColor(c Color) Style { s.headTick = c; return s }
func (s Style) WithBodyTickColor(c Color) Style { s.bodyTick = c; return s }
func (s Style) WithFrameNumColor(c Color) Style { s.frameNum = c; return s }

// WithSlotColors sets the two colors alternated over item rows. Even rows use
// even, odd rows use odd.
func (s Style) WithSlotColors(even, odd Color) Style {
	s.slotColor = [2]Color{even, odd}
	return s
}

func (s Style) HeaderColor() Color   { return s.header }
func (s Style) BgColor() Color       { return s.bg }
func (s Style) TopColor() Color      { return s.top }
func (s Style) HeadTickColor() Color { return s.headTick }
func (s Style) BodyTickColor() Color { return s.bodyTick }
func (s Style) FrameNumColor() Color { return s.frameNum }

// SlotColor returns the background color of item row index.
func (s Style) SlotColor(index int) Color {
	return s.slotColor[index&1]
}

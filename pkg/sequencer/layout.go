package sequencer

import (
	"strconv"

	"gioui.org/f32"
)

// Hit region IDs.
const (
	RegionHeader  = "topBar"
	RegionContent = "contentBar"
)

const (
	lineThickness float32 = 1
	// frameLabelOffset is the gap between a major tick and its number.
	frameLabelOffset float32 = 3
)

// itemLabelOffset positions an item label inside its legend cell.
var itemLabelOffset = f32.Pt(3, 2)

// Region is an invisible interactive area. Hosts register it for hit
// testing and focus; it paints nothing.
type Region struct {
	ID  string
	Min f32.Point
	Max f32.Point
}

// Size returns the extent of the region.
func (r Region) Size() f32.Point {
	return r.Max.Sub(r.Min)
}

// Tick is a ruler tick that made it onto the canvas.
type Tick struct {
	Frame uint32
	Kind  TickKind
	X     float32
}

// Frame is the output of one layout pass.
type Frame struct {
	DrawList

	// Regions holds the header region followed by the content region.
	Regions []Region
	// Ticks lists the visible ticks in the order they were drawn.
	Ticks      []Tick
	Decimation Decimation
	Zoom       Zoom
}

// Region returns the region with the given id.
func (f *Frame) Region(id string) (Region, bool) {
	for _, r := range f.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// Draw lays out seq on canvas and returns the primitives to paint.
//
// Draw keeps no state between calls. The only thing it changes is the focus
// flag of seq, which is set to canvas.Focused. Calling it twice with the same
// input gives the same Frame. flags are accepted for forward compatibility;
// no option changes the layout.
//
// Primitives are emitted in painting order: the header, background and ruler
// top rectangles, the ruler ticks with the numbers of major ticks, the item
// labels, the item slots and finally the vertical grid lines across all rows.
func Draw(seq Sequencer, canvas Canvas, cfg Config, flags Options) *Frame {
	r := RangeOf(seq)
	style := seq.Style()
	count := seq.ItemCount()
	if count < 0 {
		count = 0
	}
	h := cfg.ItemHeight
	right := canvas.Pos.X + canvas.Size.X

	f := &Frame{
		Decimation: Decimate(cfg.FramePixelWidth),
		Zoom:       cfg.ZoomFor(canvas, r),
	}

	header := Region{
		ID:  RegionHeader,
		Min: canvas.Pos,
		Max: f32.Pt(right, canvas.Pos.Y+h),
	}
	content := Region{
		ID:  RegionContent,
		Min: f32.Pt(canvas.Pos.X, header.Max.Y),
		Max: f32.Pt(right, header.Max.Y+float32(count)*h),
	}
	f.Regions = []Region{header, content}
	seq.SetFocused(canvas.Focused)

	f.AddRectFilled(header.Min, header.Max, style.HeaderColor())
	f.AddRectFilled(canvas.Pos, canvas.Pos.Add(canvas.Size), style.BgColor())
	f.AddRectFilled(f32.Pt(canvas.Pos.X+cfg.LegendWidth, canvas.Pos.Y), header.Max, style.TopColor())

	var frames []uint32
	if last, ok := cfg.lastVisibleFrame(canvas); ok {
		frames = f.Decimation.visibleFrames(r, last)
	}
	for _, frame := range frames {
		px := cfg.PixelX(canvas, frame)
		if !cfg.Visible(canvas, px) {
			continue
		}
		kind := f.Decimation.Classify(frame, r)
		f.Ticks = append(f.Ticks, Tick{Frame: frame, Kind: kind, X: px})
		f.AddLine(f32.Pt(px, canvas.Pos.Y+kind.Start()), f32.Pt(px, header.Max.Y), style.HeadTickColor(), lineThickness)
		if kind == TickMajor {
			f.AddText(f32.Pt(px+frameLabelOffset, canvas.Pos.Y), style.FrameNumColor(), strconv.FormatUint(uint64(frame), 10))
		}
	}

	for i := 0; i < count; i++ {
		pos := content.Min.Add(f32.Pt(itemLabelOffset.X, float32(i)*h+itemLabelOffset.Y))
		f.AddText(pos, ColorWhite, itemLabel(seq, i))
	}
	for i := 0; i < count; i++ {
		top := f32.Pt(content.Min.X+cfg.LegendWidth, content.Min.Y+float32(i)*h+1)
		f.AddRectFilled(top, f32.Pt(right, top.Y+h-1), style.SlotColor(i))
	}

	for _, t := range f.Ticks {
		f.AddLine(f32.Pt(t.X, content.Min.Y), f32.Pt(t.X, content.Max.Y), style.BodyTickColor(), lineThickness)
	}
	return f
}

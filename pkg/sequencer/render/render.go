// Package render paints sequencer draw lists with Gio.
package render

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/OpenTraceLab/OpenTraceSeq/pkg/sequencer"
)

// DefaultTextSize is the size of frame numbers and item labels.
const DefaultTextSize unit.Sp = 12

// Renderer replays draw lists as Gio operations.
type Renderer struct {
	Shaper   *text.Shaper
	Font     font.Font
	TextSize unit.Sp
}

// NewRenderer returns a renderer using the bundled Go fonts.
func NewRenderer() *Renderer {
	return &Renderer{
		Shaper:   text.NewShaper(text.WithCollection(gofont.Collection())),
		TextSize: DefaultTextSize,
	}
}

// Paint draws every primitive of l in order.
func (r *Renderer) Paint(gtx layout.Context, l *sequencer.DrawList) {
	for _, p := range l.Primitives {
		switch p.Kind {
		case sequencer.KindRect:
			fillRect(gtx.Ops, p)
		case sequencer.KindLine:
			strokeLine(gtx.Ops, p)
		case sequencer.KindText:
			r.drawText(gtx, p)
		}
	}
}

func fillRect(ops *op.Ops, p sequencer.Primitive) {
	min, max := p.Min, p.Max
	if !(max.X > min.X) || !(max.Y > min.Y) {
		return
	}
	var path clip.Path
	path.Begin(ops)
	path.MoveTo(min)
	path.LineTo(f32.Pt(max.X, min.Y))
	path.LineTo(max)
	path.LineTo(f32.Pt(min.X, max.Y))
	path.Close()
	paint.FillShape(ops, p.Color.NRGBA(), clip.Outline{Path: path.End()}.Op())
}

func strokeLine(ops *op.Ops, p sequencer.Primitive) {
	var path clip.Path
	path.Begin(ops)
	path.MoveTo(p.Min)
	path.LineTo(p.Max)
	stroke := clip.Stroke{
		Path:  path.End(),
		Width: p.Thickness,
	}.Op()
	paint.FillShape(ops, p.Color.NRGBA(), stroke)
}

func (r *Renderer) drawText(gtx layout.Context, p sequencer.Primitive) {
	stack := op.Affine(f32.Affine2D{}.Offset(p.Min)).Push(gtx.Ops)
	defer stack.Pop()

	macro := op.Record(gtx.Ops)
	paint.ColorOp{Color: p.Color.NRGBA()}.Add(gtx.Ops)
	material := macro.Stop()

	gtx.Constraints.Min = image.Point{}
	label := widget.Label{Alignment: text.Start, MaxLines: 1}
	label.Layout(gtx, r.Shaper, r.Font, r.TextSize, p.Text, material)
}

// CanvasOf returns a sequencer canvas filling the maximum constraints of gtx.
// Gio positions relative to the current transform, so the origin is zero.
func CanvasOf(gtx layout.Context, focused bool) sequencer.Canvas {
	return sequencer.Canvas{
		Size:    layout.FPt(gtx.Constraints.Max),
		Focused: focused,
	}
}

func roundPt(p f32.Point) image.Point {
	return image.Pt(int(math.Round(float64(p.X))), int(math.Round(float64(p.Y))))
}

// regionTag identifies a hit region in the Gio event router.
type regionTag struct {
	id string
}

// Hits registers the invisible regions of a frame and reports presses on
// them.
type Hits struct {
	tags map[string]*regionTag
}

func (h *Hits) tag(id string) *regionTag {
	if h.tags == nil {
		h.tags = make(map[string]*regionTag)
	}
	t, ok := h.tags[id]
	if !ok {
		t = &regionTag{id: id}
		h.tags[id] = t
	}
	return t
}

// Add declares an input area for every region.
func (h *Hits) Add(gtx layout.Context, regions []sequencer.Region) {
	for _, reg := range regions {
		rect := image.Rectangle{Min: roundPt(reg.Min), Max: roundPt(reg.Max)}
		area := clip.Rect(rect).Push(gtx.Ops)
		event.Op(gtx.Ops, h.tag(reg.ID))
		area.Pop()
	}
}

// Pressed drains the press events of region id and reports whether there
// was any.
func (h *Hits) Pressed(gtx layout.Context, id string) bool {
	tag := h.tag(id)
	pressed := false
	for {
		ev, ok := gtx.Event(pointer.Filter{Target: tag, Kinds: pointer.Press})
		if !ok {
			break
		}
		if e, ok := ev.(pointer.Event); ok && e.Kind == pointer.Press {
			pressed = true
		}
	}
	return pressed
}

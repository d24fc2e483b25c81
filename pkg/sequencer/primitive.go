package sequencer

import (
	"fmt"

	"gioui.org/f32"
)

// Kind identifies a draw primitive.
type Kind int

const (
	KindRect Kind = iota
	KindLine
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Primitive is one draw command.
//
// A rect is filled from Min to Max. A line runs from Min to Max with the
// given Thickness. Text is drawn with its top-left corner at Min.
type Primitive struct {
	Kind      Kind
	Min       f32.Point
	Max       f32.Point
	Color     Color
	Thickness float32
	Text      string
}

func (p Primitive) String() string {
	switch p.Kind {
	case KindText:
		return fmt.Sprintf("text (%g,%g) %s %q", p.Min.X, p.Min.Y, p.Color, p.Text)
	case KindLine:
		return fmt.Sprintf("line (%g,%g)-(%g,%g) %s w=%g", p.Min.X, p.Min.Y, p.Max.X, p.Max.Y, p.Color, p.Thickness)
	default:
		return fmt.Sprintf("%s (%g,%g)-(%g,%g) %s", p.Kind, p.Min.X, p.Min.Y, p.Max.X, p.Max.Y, p.Color)
	}
}

// DrawList is an ordered list of primitives, painted first to last.
type DrawList struct {
	Primitives []Primitive
}

func (l *DrawList) AddRectFilled(min, max f32.Point, c Color) {
	l.Primitives = append(l.Primitives, Primitive{Kind: KindRect, Min: min, Max: max, Color: c})
}

func (l *DrawList) AddLine(from, to f32.Point, c Color, thickness float32) {
	l.Primitives = append(l.Primitives, Primitive{Kind: KindLine, Min: from, Max: to, Color: c, Thickness: thickness})
}

func (l *DrawList) AddText(pos f32.Point, c Color, text string) {
	l.Primitives = append(l.Primitives, Primitive{Kind: KindText, Min: pos, Color: c, Text: text})
}

// Len returns the number of primitives.
func (l *DrawList) Len() int {
	return len(l.Primitives)
}

// Filter returns the primitives of kind k, in order.
func (l *DrawList) Filter(k Kind) []Primitive {
	var out []Primitive
	for _, p := range l.Primitives {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}

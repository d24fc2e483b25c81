package sequencer

import "fmt"

// Sequencer is the model a timeline is laid out from. Applications implement
// it on their own types; Draw never needs to know the concrete model.
//
// FrameMin must not exceed FrameMax and ItemCount must not be negative.
// Draw does not check either.
type Sequencer interface {
	FrameMin() uint32
	FrameMax() uint32
	ItemCount() int

	// SetFocused is called once per Draw with the focus state of the
	// window hosting the widget.
	SetFocused(focused bool)
	Focused() bool

	Style() Style
}

// ItemLabeler is implemented by models that name their items. Models that
// don't get "label <index>" in the legend column.
type ItemLabeler interface {
	ItemLabel(index int) string
}

// TimeRange is an inclusive frame interval.
type TimeRange struct {
	Min uint32
	Max uint32
}

// RangeOf reads the frame bounds of seq.
func RangeOf(seq Sequencer) TimeRange {
	return TimeRange{Min: seq.FrameMin(), Max: seq.FrameMax()}
}

// FrameCount returns Max-Min, floored to 1 so it can divide. An inverted
// range also counts as one frame.
func (r TimeRange) FrameCount() uint32 {
	if r.Max <= r.Min {
		return 1
	}
	return r.Max - r.Min
}

// Contains reports whether frame lies within the range.
func (r TimeRange) Contains(frame uint32) bool {
	return frame >= r.Min && frame <= r.Max
}

func (r TimeRange) String() string {
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

func itemLabel(seq Sequencer, index int) string {
	if l, ok := seq.(ItemLabeler); ok {
		return l.ItemLabel(index)
	}
	return fmt.Sprintf("label %d", index)
}

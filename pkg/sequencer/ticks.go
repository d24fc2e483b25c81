package sequencer

import "math"

// minPeriodPixels is the narrowest a labelled tick period may render.
const minPeriodPixels = 150

// maxModFrameCount is the largest period that can still be doubled.
const maxModFrameCount = math.MaxUint32 / 2

// Decimation is the tick spacing chosen for a frame pixel width.
type Decimation struct {
	// ModFrameCount is the period between labelled ticks, in frames.
	ModFrameCount uint32
	// HalfModFrameCount is the period between medium ticks.
	HalfModFrameCount uint32
	// FrameStep is the stride between candidate tick frames.
	FrameStep uint32
}

// Decimate picks the tick spacing for framePixelWidth. The period starts at
// 10 frames with a stride of 1 and both double until a period spans at least
// 150 pixels. A non-positive width keeps the base spacing. Doubling stops
// before the period would overflow, so very small widths get the widest
// representable period.
func Decimate(framePixelWidth float32) Decimation {
	d := Decimation{ModFrameCount: 10, FrameStep: 1}
	if framePixelWidth > 0 {
		for float32(d.ModFrameCount)*framePixelWidth < minPeriodPixels && d.ModFrameCount <= maxModFrameCount {
			d.ModFrameCount *= 2
			d.FrameStep *= 2
		}
	}
	d.HalfModFrameCount = d.ModFrameCount / 2
	return d
}

// TickKind is the visual weight of a ruler tick.
type TickKind int

const (
	TickPlain TickKind = iota
	TickMinor
	TickMajor
)

func (k TickKind) String() string {
	switch k {
	case TickMajor:
		return "major"
	case TickMinor:
		return "minor"
	default:
		return "plain"
	}
}

// Tick start offsets from the top of the header row.
const (
	majorTickStart float32 = 4
	minorTickStart float32 = 10
	plainTickStart float32 = 14
)

// Start returns the y offset, from the top of the header, where a tick of
// kind k begins.
func (k TickKind) Start() float32 {
	switch k {
	case TickMajor:
		return majorTickStart
	case TickMinor:
		return minorTickStart
	default:
		return plainTickStart
	}
}

// Classify returns the weight of frame within r. The range endpoints are
// always major.
func (d Decimation) Classify(frame uint32, r TimeRange) TickKind {
	switch {
	case frame%d.ModFrameCount == 0 || frame == r.Min || frame == r.Max:
		return TickMajor
	case frame%d.HalfModFrameCount == 0:
		return TickMinor
	default:
		return TickPlain
	}
}

// Frames lists the candidate tick frames of r: every FrameStep-th frame from
// r.Min/FrameStep up to, but excluding, r.Max/FrameStep, followed by r.Min and
// r.Max. An endpoint already listed is not repeated.
func (d Decimation) Frames(r TimeRange) []uint32 {
	return d.frames(r, r.Max/d.FrameStep)
}

// visibleFrames is Frames cut off after the last frame that can still land
// on canvas. Frames past that point would be clipped anyway.
func (d Decimation) visibleFrames(r TimeRange, last uint32) []uint32 {
	hi := uint64(r.Max / d.FrameStep)
	// One stride of slack past the last visible frame absorbs float rounding
	// in the visibility test.
	if limit := uint64(last/d.FrameStep) + 2; limit < hi {
		hi = limit
	}
	return d.frames(r, uint32(hi))
}

func (d Decimation) frames(r TimeRange, hi uint32) []uint32 {
	lo := r.Min / d.FrameStep
	var out []uint32
	for i := lo; i < hi; i++ {
		out = append(out, i*d.FrameStep)
	}
	if len(out) == 0 || out[0] != r.Min {
		out = append(out, r.Min)
	}
	if r.Max != r.Min {
		out = append(out, r.Max)
	}
	return out
}

package project

import "github.com/OpenTraceLab/OpenTraceSeq/pkg/sequencer"

// View shows a subset of the tracks of a project, in the order given. Focus
// is stored on the underlying project.
type View struct {
	p       *Project
	indices []int
}

var (
	_ sequencer.Sequencer   = (*View)(nil)
	_ sequencer.ItemLabeler = (*View)(nil)
)

// Subset returns a view over the tracks at indices. Indices out of range are
// dropped.
func (p *Project) Subset(indices []int) *View {
	kept := make([]int, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(p.Tracks) {
			kept = append(kept, i)
		}
	}
	return &View{p: p, indices: kept}
}

func (v *View) FrameMin() uint32        { return v.p.FrameMin() }
func (v *View) FrameMax() uint32        { return v.p.FrameMax() }
func (v *View) ItemCount() int          { return len(v.indices) }
func (v *View) SetFocused(focused bool) { v.p.SetFocused(focused) }
func (v *View) Focused() bool           { return v.p.Focused() }
func (v *View) Style() sequencer.Style  { return v.p.Style() }

// ItemLabel returns the label of the index-th visible track.
func (v *View) ItemLabel(index int) string {
	return v.p.ItemLabel(v.indices[index])
}

// TrackIndex maps a visible row back to its track in the project.
func (v *View) TrackIndex(row int) int {
	return v.indices[row]
}

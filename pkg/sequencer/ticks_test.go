package sequencer

import (
	"slices"
	"testing"
)

func TestDecimate(t *testing.T) {
	tests := []struct {
		fpw  float32
		mod  uint32
		step uint32
	}{
		{10, 20, 2},
		{15, 10, 1},
		{150, 10, 1},
		{7.5, 20, 2},
		{7, 40, 4},
		{1, 160, 16},
		{0.5, 320, 32},
		{0, 10, 1},
		{-4, 10, 1},
		{1e-8, 2684354560, 268435456},
		{1e-30, 2684354560, 268435456},
	}
	for _, tt := range tests {
		d := Decimate(tt.fpw)
		if d.ModFrameCount != tt.mod || d.FrameStep != tt.step {
			t.Errorf("Decimate(%g) = mod %d step %d, want mod %d step %d",
				tt.fpw, d.ModFrameCount, d.FrameStep, tt.mod, tt.step)
		}
		if d.HalfModFrameCount != d.ModFrameCount/2 {
			t.Errorf("Decimate(%g): half = %d, want %d", tt.fpw, d.HalfModFrameCount, d.ModFrameCount/2)
		}
	}
}

func TestDecimateProperties(t *testing.T) {
	for fpw := float32(0.25); fpw <= 200; fpw += 0.25 {
		d := Decimate(fpw)
		if float32(d.ModFrameCount)*fpw < minPeriodPixels {
			t.Fatalf("fpw=%g: period %d renders %gpx, below %d", fpw, d.ModFrameCount,
				float32(d.ModFrameCount)*fpw, minPeriodPixels)
		}
		ratio := d.ModFrameCount / 10
		if d.ModFrameCount%10 != 0 || ratio&(ratio-1) != 0 {
			t.Fatalf("fpw=%g: period %d is not 10 times a power of two", fpw, d.ModFrameCount)
		}
		if d.FrameStep != ratio {
			t.Fatalf("fpw=%g: step %d, want %d", fpw, d.FrameStep, ratio)
		}
		if d.ModFrameCount > 10 && float32(d.ModFrameCount/2)*fpw >= minPeriodPixels {
			t.Fatalf("fpw=%g: period %d is wider than needed", fpw, d.ModFrameCount)
		}
	}
}

func TestClassify(t *testing.T) {
	d := Decimate(10) // period 20, half 10
	r := TimeRange{Min: 3, Max: 97}
	tests := []struct {
		frame uint32
		want  TickKind
	}{
		{0, TickMajor},
		{20, TickMajor},
		{3, TickMajor},
		{97, TickMajor},
		{10, TickMinor},
		{30, TickMinor},
		{2, TickPlain},
		{14, TickPlain},
	}
	for _, tt := range tests {
		if got := d.Classify(tt.frame, r); got != tt.want {
			t.Errorf("Classify(%d) = %v, want %v", tt.frame, got, tt.want)
		}
	}
}

func TestTickKindStart(t *testing.T) {
	if TickMajor.Start() != 4 || TickMinor.Start() != 10 || TickPlain.Start() != 14 {
		t.Errorf("tick starts = %g/%g/%g, want 4/10/14",
			TickMajor.Start(), TickMinor.Start(), TickPlain.Start())
	}
}

func TestFrames(t *testing.T) {
	d := Decimate(10) // step 2
	tests := []struct {
		name string
		r    TimeRange
		want []uint32
	}{
		{"aligned min", TimeRange{0, 9}, []uint32{0, 2, 4, 6, 9}},
		{"unaligned endpoints", TimeRange{3, 11}, []uint32{2, 4, 6, 8, 3, 11}},
		{"single frame", TimeRange{5, 5}, []uint32{5}},
		{"two frames", TimeRange{4, 5}, []uint32{4, 5}},
		{"inverted", TimeRange{9, 2}, []uint32{9, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Frames(tt.r); !slices.Equal(got, tt.want) {
				t.Errorf("Frames(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestFramesForcesEndpoints(t *testing.T) {
	d := Decimate(10)
	r := TimeRange{Min: 3, Max: 97}
	frames := d.Frames(r)
	for _, want := range []uint32{r.Min, r.Max} {
		if !slices.Contains(frames, want) {
			t.Fatalf("Frames(%v) misses endpoint %d", r, want)
		}
		if d.Classify(want, r) != TickMajor {
			t.Errorf("endpoint %d is not major", want)
		}
	}
}

func TestVisibleFramesMatchesFullPrefix(t *testing.T) {
	d := Decimate(10)
	r := TimeRange{Min: 0, Max: 10000}
	full := d.Frames(r)
	cut := d.visibleFrames(r, 20)
	// Everything up to frame 20 must be present, in the same order.
	var wantPrefix []uint32
	for _, f := range full[:len(full)-1] {
		if f <= 20 {
			wantPrefix = append(wantPrefix, f)
		}
	}
	if !slices.Equal(cut[:len(wantPrefix)], wantPrefix) {
		t.Errorf("visibleFrames prefix = %v, want %v", cut[:len(wantPrefix)], wantPrefix)
	}
	if cut[len(cut)-1] != r.Max {
		t.Errorf("visibleFrames does not end with max frame: %v", cut)
	}
	if len(cut) > 20 {
		t.Errorf("visibleFrames returned %d frames for 21 visible", len(cut))
	}
}

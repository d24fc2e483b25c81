package sequencer

import (
	"math"
	"testing"

	"gioui.org/f32"
)

func canvasOf(w, h float32) Canvas {
	return Canvas{Size: f32.Pt(w, h)}
}

func TestPixelXMonotonic(t *testing.T) {
	configs := []Config{
		DefaultConfig(),
		{FramePixelWidth: 0.5, LegendWidth: 0, ItemHeight: 20},
		{FramePixelWidth: 3, LegendWidth: 120, ItemHeight: 16},
		{FramePixelWidth: 42, LegendWidth: 10, ItemHeight: 20},
	}
	canvas := Canvas{Pos: f32.Pt(17, 5), Size: f32.Pt(800, 300)}
	for _, cfg := range configs {
		prev := cfg.PixelX(canvas, 0)
		for f := uint32(1); f <= 10000; f++ {
			x := cfg.PixelX(canvas, f)
			if !(x > prev) {
				t.Fatalf("fpw=%g legend=%g: PixelX(%d)=%g not above PixelX(%d)=%g",
					cfg.FramePixelWidth, cfg.LegendWidth, f, x, f-1, prev)
			}
			prev = x
		}
	}
}

func TestPixelXOrigin(t *testing.T) {
	cfg := DefaultConfig()
	canvas := Canvas{Pos: f32.Pt(50, 30), Size: f32.Pt(400, 100)}
	if got := cfg.PixelX(canvas, 0); got != 250 {
		t.Errorf("PixelX(0) = %g, want 250", got)
	}
	if got := cfg.PixelX(canvas, 7); got != 320 {
		t.Errorf("PixelX(7) = %g, want 320", got)
	}
}

func TestVisible(t *testing.T) {
	cfg := DefaultConfig()
	canvas := Canvas{Pos: f32.Pt(10, 0), Size: f32.Pt(400, 100)}
	tests := []struct {
		x    float32
		want bool
	}{
		{209.9, false},
		{210, true},
		{300, true},
		{410, true},
		{410.1, false},
	}
	for _, tt := range tests {
		if got := cfg.Visible(canvas, tt.x); got != tt.want {
			t.Errorf("Visible(%g) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestZoomFor(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name      string
		canvas    Canvas
		r         TimeRange
		visible   uint32
		ratio     float32
		barPixels float32
	}{
		{"all frames fit", canvasOf(400, 100), TimeRange{0, 9}, 20, 1, 200},
		{"fifth visible", canvasOf(400, 100), TimeRange{0, 100}, 20, 0.2, 40},
		{"partial frame rounds down", canvasOf(405, 100), TimeRange{0, 100}, 20, 0.2, 41},
		{"single frame range", canvasOf(400, 100), TimeRange{5, 5}, 20, 1, 200},
		{"legend wider than canvas", canvasOf(150, 100), TimeRange{0, 100}, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := cfg.ZoomFor(tt.canvas, tt.r)
			if z.VisibleFrameCount != tt.visible {
				t.Errorf("VisibleFrameCount = %d, want %d", z.VisibleFrameCount, tt.visible)
			}
			if z.FrameCount != tt.r.FrameCount() {
				t.Errorf("FrameCount = %d, want %d", z.FrameCount, tt.r.FrameCount())
			}
			if math.Abs(float64(z.BarWidthRatio-tt.ratio)) > 1e-5 {
				t.Errorf("BarWidthRatio = %g, want %g", z.BarWidthRatio, tt.ratio)
			}
			if math.Abs(float64(z.BarWidthPixels-tt.barPixels)) > 1e-3 {
				t.Errorf("BarWidthPixels = %g, want %g", z.BarWidthPixels, tt.barPixels)
			}
		})
	}
}

func TestZoomForZeroPixelWidth(t *testing.T) {
	cfg := Config{FramePixelWidth: 0, LegendWidth: 200, ItemHeight: 20}
	z := cfg.ZoomFor(canvasOf(400, 100), TimeRange{0, 100})
	if z.VisibleFrameCount != 0 || z.BarWidthRatio != 0 {
		t.Errorf("zero pixel width: got %+v", z)
	}
}

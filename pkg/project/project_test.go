package project

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"gioui.org/f32"

	"github.com/OpenTraceLab/OpenTraceSeq/pkg/sequencer"
)

const sample = `
name = "intro"
frame_min = 3
frame_max = 97

[layout]
frame_pixel_width = 8
legend_width = 160.5

[style]
header = "0xff202020"
background = "#ff111111"
frame_number = 4294967295
slots = ["#101010", "0x80202020"]

[[track]]
name = "camera"

[[track]]
name = ""

[[track]]
name = "light"
`

func TestParse(t *testing.T) {
	p, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Name != "intro" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.FrameMin() != 3 || p.FrameMax() != 97 {
		t.Errorf("range = %v, want 3..97", p.Range)
	}
	if p.ItemCount() != 3 {
		t.Fatalf("ItemCount = %d, want 3", p.ItemCount())
	}
	if got := p.Labels(); !slices.Equal(got, []string{"camera", "label 1", "light"}) {
		t.Errorf("Labels = %v", got)
	}

	cfg := p.Config()
	want := sequencer.Config{FramePixelWidth: 8, LegendWidth: 160.5, ItemHeight: sequencer.DefaultItemHeight}
	if cfg != want {
		t.Errorf("Config = %+v, want %+v", cfg, want)
	}

	s := p.Style()
	def := sequencer.DefaultStyle()
	checks := []struct {
		name      string
		got, want sequencer.Color
	}{
		{"header", s.HeaderColor(), 0xff202020},
		{"background", s.BgColor(), 0xff111111},
		{"top", s.TopColor(), def.TopColor()},
		{"head tick", s.HeadTickColor(), def.HeadTickColor()},
		{"frame number", s.FrameNumColor(), 0xffffffff},
		{"slot 0", s.SlotColor(0), 0xff101010},
		{"slot 1", s.SlotColor(1), 0x80202020},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
}

func TestParseDefaults(t *testing.T) {
	p, err := Parse("frame_max = 10\n")
	if err != nil {
		t.Fatal(err)
	}
	if p.Config() != sequencer.DefaultConfig() {
		t.Errorf("Config = %+v, want defaults", p.Config())
	}
	if p.Style() != sequencer.DefaultStyle() {
		t.Error("Style differs from the default")
	}
	if p.ItemCount() != 0 {
		t.Errorf("ItemCount = %d", p.ItemCount())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"inverted range", "frame_min = 10\nframe_max = 2\n", ErrInvalidRange},
		{"one slot", "frame_max = 2\n[style]\nslots = [\"#000000\"]\n", ErrInvalidSlots},
		{"zero width", "frame_max = 2\n[layout]\nframe_pixel_width = 0\n", ErrInvalidLayout},
		{"negative legend", "frame_max = 2\n[layout]\nlegend_width = -5.0\n", ErrInvalidLayout},
		{"unknown key", "frame_max = 2\nzoom = 3\n", ErrUnknownKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.doc)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}

	bad := []string{
		"frame_max = -1\n",
		"frame_max = 2\n[style]\nheader = \"0xzz\"\n",
		"frame_max = 2\n[style]\nheader = true\n",
		"frame_max = \n",
	}
	for _, doc := range bad {
		if _, err := Parse(doc); err == nil {
			t.Errorf("Parse(%q) succeeded", doc)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want sequencer.Color
		ok   bool
	}{
		{"0xff242424", 0xff242424, true},
		{"0X30606060", 0x30606060, true},
		{"#3d3837", 0xff3d3837, true},
		{" ffbbbbbb ", 0xffbbbbbb, true},
		{"#12345", 0, false},
		{"0xgg000000", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseColor(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	p, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `header = "0xff202020"`) {
		t.Errorf("encoded project lacks header color:\n%s", buf.String())
	}
	back, err := Parse(buf.String())
	if err != nil {
		t.Fatalf("re-parse: %v\n%s", err, buf.String())
	}
	if back.Range != p.Range || back.Style() != p.Style() || back.Config() != p.Config() {
		t.Error("round trip changed the project")
	}
	if !slices.Equal(back.Tracks, p.Tracks) {
		t.Errorf("tracks = %v, want %v", back.Tracks, p.Tracks)
	}
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.toml")
	if err := Save(path, Demo(4, 120)); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.ItemCount() != 4 || p.ItemLabel(3) != "track 03" || p.FrameMax() != 120 {
		t.Errorf("loaded %d tracks, label %q, max %d", p.ItemCount(), p.ItemLabel(3), p.FrameMax())
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v", err)
	}
}

func TestViewSubset(t *testing.T) {
	p, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	v := p.Subset([]int{2, 0, 7, -1})
	if v.ItemCount() != 2 {
		t.Fatalf("ItemCount = %d, want 2", v.ItemCount())
	}
	if v.ItemLabel(0) != "light" || v.ItemLabel(1) != "camera" {
		t.Errorf("labels = %q %q", v.ItemLabel(0), v.ItemLabel(1))
	}
	if v.TrackIndex(0) != 2 {
		t.Errorf("TrackIndex(0) = %d", v.TrackIndex(0))
	}

	v.SetFocused(true)
	if !p.Focused() {
		t.Error("view focus not stored on the project")
	}

	f := sequencer.Draw(v, sequencer.Canvas{Size: f32.Pt(800, 200)}, p.Config(), 0)
	if content, _ := f.Region(sequencer.RegionContent); content.Size().Y != 2*p.Config().ItemHeight {
		t.Errorf("content height = %g", content.Size().Y)
	}
}

func TestDemo(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{3, 3},
		{-1, 0},
	}
	for _, tt := range tests {
		p := Demo(tt.n, 10)
		if p.ItemCount() != tt.want {
			t.Errorf("Demo(%d) has %d tracks, want %d", tt.n, p.ItemCount(), tt.want)
		}
	}
	if got := Demo(3, 10).ItemLabel(2); got != "track 02" {
		t.Errorf("label = %q", got)
	}
}

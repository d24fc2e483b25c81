// Package project loads sequencer projects from TOML files.
//
// A project names a frame range, lists its tracks and may override the style
// palette and the layout constants:
//
//	name = "intro"
//	frame_min = 0
//	frame_max = 240
//
//	[layout]
//	frame_pixel_width = 8
//
//	[style]
//	header = "0xff202020"
//	slots = ["0xff3a3636", "0xff413d3d"]
//
//	[[track]]
//	name = "camera"
//
// Colors are packed 0xAARRGGBB values written as strings ("0x..." or "#...")
// or plain integers.
package project

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/OpenTraceLab/OpenTraceSeq/pkg/sequencer"
)

var (
	ErrInvalidRange  = errors.New("frame_max is below frame_min")
	ErrInvalidSlots  = errors.New("style.slots needs exactly two colors")
	ErrInvalidLayout = errors.New("layout values must be positive")
	ErrUnknownKey    = errors.New("unknown key")
)

// Track is one row of the sequencer.
type Track struct {
	Name string `toml:"name"`
}

// Project is a loaded project. It implements sequencer.Sequencer and
// sequencer.ItemLabeler.
type Project struct {
	Name   string
	Range  sequencer.TimeRange
	Tracks []Track

	style   sequencer.Style
	layout  sequencer.Config
	focused bool
}

var (
	_ sequencer.Sequencer   = (*Project)(nil)
	_ sequencer.ItemLabeler = (*Project)(nil)
)

// New returns a project with the default style and layout.
func New(name string, r sequencer.TimeRange, tracks ...Track) *Project {
	return &Project{
		Name:   name,
		Range:  r,
		Tracks: tracks,
		style:  sequencer.DefaultStyle(),
		layout: sequencer.DefaultConfig(),
	}
}

func (p *Project) FrameMin() uint32        { return p.Range.Min }
func (p *Project) FrameMax() uint32        { return p.Range.Max }
func (p *Project) ItemCount() int          { return len(p.Tracks) }
func (p *Project) SetFocused(focused bool) { p.focused = focused }
func (p *Project) Focused() bool           { return p.focused }
func (p *Project) Style() sequencer.Style  { return p.style }

// SetStyle replaces the palette between frames.
func (p *Project) SetStyle(s sequencer.Style) { p.style = s }

// Config returns the layout constants of the project.
func (p *Project) Config() sequencer.Config { return p.layout }

// SetConfig replaces the layout constants.
func (p *Project) SetConfig(c sequencer.Config) { p.layout = c }

// ItemLabel returns the track name, or "label <index>" for unnamed tracks.
func (p *Project) ItemLabel(index int) string {
	if name := p.Tracks[index].Name; name != "" {
		return name
	}
	return fmt.Sprintf("label %d", index)
}

// Labels returns the label of every track, in order.
func (p *Project) Labels() []string {
	out := make([]string, len(p.Tracks))
	for i := range p.Tracks {
		out[i] = p.ItemLabel(i)
	}
	return out
}

// Load reads a project file.
func Load(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open project: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a project from TOML text.
func Parse(data string) (*Project, error) {
	return Decode(strings.NewReader(data))
}

// Decode reads a project from r. Keys the format does not define are
// rejected.
func Decode(r io.Reader) (*Project, error) {
	var doc file
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return doc.project()
}

// Encode writes p as TOML.
func Encode(w io.Writer, p *Project) error {
	if err := toml.NewEncoder(w).Encode(fileOf(p)); err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	return nil
}

// Save writes p to path, replacing any existing file.
func Save(path string, p *Project) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	if err := Encode(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Demo returns a project with n named tracks over frames 0..last. A negative
// n gives no tracks.
func Demo(n int, last uint32) *Project {
	tracks := make([]Track, max(n, 0))
	for i := range tracks {
		tracks[i] = Track{Name: fmt.Sprintf("track %02d", i)}
	}
	return New("demo", sequencer.TimeRange{Min: 0, Max: last}, tracks...)
}

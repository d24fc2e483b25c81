package project

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceSeq/pkg/sequencer"
)

// file mirrors the TOML layout of a project.
type file struct {
	Name     string     `toml:"name"`
	FrameMin uint32     `toml:"frame_min"`
	FrameMax uint32     `toml:"frame_max"`
	Layout   layoutFile `toml:"layout,omitempty"`
	Style    styleFile  `toml:"style,omitempty"`
	Tracks   []Track    `toml:"track"`
}

type layoutFile struct {
	FramePixelWidth *float32 `toml:"frame_pixel_width,omitempty"`
	LegendWidth     *float32 `toml:"legend_width,omitempty"`
	ItemHeight      *float32 `toml:"item_height,omitempty"`
}

type styleFile struct {
	Header      *colorValue  `toml:"header,omitempty"`
	Background  *colorValue  `toml:"background,omitempty"`
	Top         *colorValue  `toml:"top,omitempty"`
	HeadTick    *colorValue  `toml:"head_tick,omitempty"`
	BodyTick    *colorValue  `toml:"body_tick,omitempty"`
	FrameNumber *colorValue  `toml:"frame_number,omitempty"`
	Slots       []colorValue `toml:"slots,omitempty"`
}

func (f *file) project() (*Project, error) {
	if f.FrameMax < f.FrameMin {
		return nil, fmt.Errorf("%w: %d < %d", ErrInvalidRange, f.FrameMax, f.FrameMin)
	}
	p := New(f.Name, sequencer.TimeRange{Min: f.FrameMin, Max: f.FrameMax}, f.Tracks...)

	cfg := p.layout
	for _, v := range []struct {
		key string
		src *float32
		dst *float32
	}{
		{"frame_pixel_width", f.Layout.FramePixelWidth, &cfg.FramePixelWidth},
		{"legend_width", f.Layout.LegendWidth, &cfg.LegendWidth},
		{"item_height", f.Layout.ItemHeight, &cfg.ItemHeight},
	} {
		if v.src == nil {
			continue
		}
		if !(*v.src > 0) {
			return nil, fmt.Errorf("%w: %s = %g", ErrInvalidLayout, v.key, *v.src)
		}
		*v.dst = *v.src
	}
	p.layout = cfg

	s := p.style
	if c := f.Style.Header; c != nil {
		s = s.WithHeaderColor(sequencer.Color(*c))
	}
	if c := f.Style.Background; c != nil {
		s = s.WithBgColor(sequencer.Color(*c))
	}
	if c := f.Style.Top; c != nil {
		s = s.WithTopColor(sequencer.Color(*c))
	}
	if c := f.Style.HeadTick; c != nil {
		s = s.WithHeadTickColor(sequencer.Color(*c))
	}
	if c := f.Style.BodyTick; c != nil {
		s = s.WithBodyTickColor(sequencer.Color(*c))
	}
	if c := f.Style.FrameNumber; c != nil {
		s = s.WithFrameNumColor(sequencer.Color(*c))
	}
	switch len(f.Style.Slots) {
	case 0:
	case 2:
		s = s.WithSlotColors(sequencer.Color(f.Style.Slots[0]), sequencer.Color(f.Style.Slots[1]))
	default:
		return nil, fmt.Errorf("%w, got %d", ErrInvalidSlots, len(f.Style.Slots))
	}
	p.style = s
	return p, nil
}

func fileOf(p *Project) file {
	cfg := p.layout
	s := p.style
	color := func(c sequencer.Color) *colorValue {
		v := colorValue(c)
		return &v
	}
	return file{
		Name:     p.Name,
		FrameMin: p.Range.Min,
		FrameMax: p.Range.Max,
		Layout: layoutFile{
			FramePixelWidth: &cfg.FramePixelWidth,
			LegendWidth:     &cfg.LegendWidth,
			ItemHeight:      &cfg.ItemHeight,
		},
		Style: styleFile{
			Header:      color(s.HeaderColor()),
			Background:  color(s.BgColor()),
			Top:         color(s.TopColor()),
			HeadTick:    color(s.HeadTickColor()),
			BodyTick:    color(s.BodyTickColor()),
			FrameNumber: color(s.FrameNumColor()),
			Slots:       []colorValue{colorValue(s.SlotColor(0)), colorValue(s.SlotColor(1))},
		},
		Tracks: p.Tracks,
	}
}

// colorValue is a sequencer.Color as written in project files.
type colorValue sequencer.Color

// UnmarshalTOML accepts "0xAARRGGBB", "#AARRGGBB" and integers.
func (c *colorValue) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		parsed, err := ParseColor(v)
		if err != nil {
			return err
		}
		*c = colorValue(parsed)
		return nil
	case int64:
		if v < 0 || v > 0xffffffff {
			return fmt.Errorf("color %d out of range", v)
		}
		*c = colorValue(v)
		return nil
	default:
		return fmt.Errorf("color must be a string or an integer, got %T", v)
	}
}

func (c colorValue) MarshalText() ([]byte, error) {
	return []byte(sequencer.Color(c).String()), nil
}

// ParseColor parses a packed 0xAARRGGBB color. A "#" prefix is accepted in
// place of "0x", and six hex digits imply an opaque color.
func ParseColor(s string) (sequencer.Color, error) {
	hex := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(hex, "#"):
		hex = hex[1:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		n |= 0xff000000
	}
	return sequencer.Color(n), nil
}

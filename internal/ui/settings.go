package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings are viewer preferences kept between runs.
type Settings struct {
	// Matcher is the name of the last selected filter matcher.
	Matcher string `toml:"matcher,omitempty"`
	// Width and Height are the window size in dp.
	Width  int `toml:"width,omitempty"`
	Height int `toml:"height,omitempty"`

	path string
}

const (
	defaultWidth  = 1024
	defaultHeight = 480
)

// DefaultSettingsPath returns the settings file in the user config
// directory, e.g. ~/.config/opentraceseq/settings.toml on Linux.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "opentraceseq", "settings.toml"), nil
}

// LoadSettings reads the settings at path. A missing file gives the
// defaults; Save will create it.
func LoadSettings(path string) (*Settings, error) {
	s := &Settings{Width: defaultWidth, Height: defaultHeight, path: path}
	if path == "" {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, s); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read settings: %w", err)
	}
	if s.Width <= 0 {
		s.Width = defaultWidth
	}
	if s.Height <= 0 {
		s.Height = defaultHeight
	}
	return s, nil
}

// Path returns the file the settings are saved to.
func (s *Settings) Path() string { return s.path }

// Save writes the settings back to the file they were loaded from. Settings
// without a path are not saved.
func (s *Settings) Save() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

package ui

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceSeq/pkg/project"
	"github.com/OpenTraceLab/OpenTraceSeq/pkg/search"
	"github.com/OpenTraceLab/OpenTraceSeq/pkg/sequencer"
)

// AppState is the viewer state between frames. It is only touched from the
// window event loop.
type AppState struct {
	path    string
	project *project.Project
	search  *search.Searchbar
	view    *project.View

	options sequencer.Options

	status    string
	lastError error
}

// NewState wraps p. path is where Reload reads the project from; it may be
// empty for projects not backed by a file.
func NewState(p *project.Project, path string) *AppState {
	s := &AppState{
		path:    path,
		project: p,
		search:  search.New("Tracks", false),
	}
	s.refilter()
	return s
}

// Project returns the loaded project.
func (s *AppState) Project() *project.Project { return s.project }

// View returns the tracks passing the current filter.
func (s *AppState) View() *project.View { return s.view }

// Search returns the searchbar filtering the tracks.
func (s *AppState) Search() *search.Searchbar { return s.search }

// Options returns the sequencer options the viewer was started with.
func (s *AppState) Options() sequencer.Options { return s.options }

// SetOptions sets the sequencer options passed to every layout.
func (s *AppState) SetOptions(o sequencer.Options) { s.options = o }

// Status returns the status line text.
func (s *AppState) Status() string { return s.status }

// LastError returns the error of the last failed operation, if any.
func (s *AppState) LastError() error { return s.lastError }

// SetQuery updates the track filter.
func (s *AppState) SetQuery(q string) {
	if err := s.search.SetQuery(q); err != nil {
		s.lastError = err
		s.status = err.Error()
		return
	}
	s.refilter()
}

// NextMatcher switches the filter to the next matcher and returns its name.
func (s *AppState) NextMatcher() string {
	if err := s.search.Next(); err != nil {
		s.lastError = err
		s.status = err.Error()
	} else {
		s.refilter()
	}
	_, m := s.search.Selected()
	return m.Name()
}

// SelectMatcher switches the filter to the matcher at index.
func (s *AppState) SelectMatcher(index int) error {
	if err := s.search.Select(index); err != nil {
		s.lastError = err
		s.status = err.Error()
		return err
	}
	s.refilter()
	return nil
}

// Reload reads the project file again, keeping the filter.
func (s *AppState) Reload() error {
	if s.path == "" {
		return nil
	}
	p, err := project.Load(s.path)
	if err != nil {
		s.lastError = err
		s.status = err.Error()
		return err
	}
	p.SetFocused(s.project.Focused())
	s.project = p
	s.refilter()
	return nil
}

func (s *AppState) refilter() {
	s.lastError = nil
	indices := s.search.Filter(s.project.Labels())
	s.view = s.project.Subset(indices)
	s.status = fmt.Sprintf("%s: %d of %d tracks, frames %s",
		s.project.Name, len(indices), s.project.ItemCount(), s.project.Range)
}

// Package search filters track labels for the sequencer viewer.
//
// A Searchbar owns a list of matchers and refers to the active one by its
// index in that list.
package search

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// ErrNoSuchMatcher is returned when selecting a matcher that isn't
// registered.
var ErrNoSuchMatcher = errors.New("no such matcher")

// Matcher decides whether a label matches a query.
type Matcher interface {
	Name() string
	// Update is called whenever the query changes.
	Update(query string) error
	Match(label, query string) bool
}

// Contains matches labels containing the query.
type Contains struct{}

func (Contains) Name() string                   { return "Contains" }
func (Contains) Update(string) error            { return nil }
func (Contains) Match(label, query string) bool { return strings.Contains(label, query) }

// WholeWord matches labels equal to the query.
type WholeWord struct{}

func (WholeWord) Name() string                   { return "Whole Word" }
func (WholeWord) Update(string) error            { return nil }
func (WholeWord) Match(label, query string) bool { return label == query }

// Regex matches labels against the query compiled as a regular expression.
// When the query does not compile the previous expression stays in effect.
type Regex struct {
	re *regexp.Regexp
}

func (r *Regex) Name() string { return "Regex" }

func (r *Regex) Update(query string) error {
	re, err := regexp.Compile(query)
	if err != nil {
		return fmt.Errorf("compile %q: %w", query, err)
	}
	r.re = re
	return nil
}

func (r *Regex) Match(label, _ string) bool {
	if r.re == nil {
		return true
	}
	return r.re.MatchString(label)
}

// Searchbar is the state behind a search field with a matcher picker.
type Searchbar struct {
	Label     string
	ShowLabel bool

	query    string
	matchers []Matcher
	selected int
	err      error
}

// New returns a searchbar offering Contains, Whole Word and Regex, with
// Contains selected.
func New(label string, showLabel bool) *Searchbar {
	return &Searchbar{
		Label:     label,
		ShowLabel: showLabel,
		matchers:  []Matcher{Contains{}, WholeWord{}, &Regex{}},
	}
}

// Matchers returns a copy of the registered matchers in selection order.
func (s *Searchbar) Matchers() []Matcher {
	return slices.Clone(s.matchers)
}

// Selected returns the index and value of the active matcher.
func (s *Searchbar) Selected() (int, Matcher) {
	return s.selected, s.matchers[s.selected]
}

// Select activates the matcher at index and feeds it the current query. If
// the matcher rejects the query the previous selection stays active and the
// error is returned.
func (s *Searchbar) Select(index int) error {
	if index < 0 || index >= len(s.matchers) {
		return fmt.Errorf("%w: index %d of %d", ErrNoSuchMatcher, index, len(s.matchers))
	}
	if s.query != "" {
		if err := s.matchers[index].Update(s.query); err != nil {
			s.err = err
			return err
		}
	}
	s.selected = index
	s.err = nil
	return nil
}

// SelectName activates the matcher with the given name, ignoring case.
func (s *Searchbar) SelectName(name string) error {
	for i, m := range s.matchers {
		if strings.EqualFold(m.Name(), name) {
			return s.Select(i)
		}
	}
	return fmt.Errorf("%w: %q", ErrNoSuchMatcher, name)
}

// Next cycles to the following matcher.
func (s *Searchbar) Next() error {
	return s.Select((s.selected + 1) % len(s.matchers))
}

// Query returns the current query text.
func (s *Searchbar) Query() string {
	return s.query
}

// SetQuery changes the query. The error of the active matcher, if any, is
// returned and kept until the next successful update.
func (s *Searchbar) SetQuery(q string) error {
	if q == s.query && s.err == nil {
		return nil
	}
	s.query = q
	return s.update()
}

// Err returns the last matcher error.
func (s *Searchbar) Err() error {
	return s.err
}

func (s *Searchbar) update() error {
	s.err = nil
	if s.query == "" {
		return nil
	}
	s.err = s.matchers[s.selected].Update(s.query)
	return s.err
}

// Matches reports whether label passes the current query. An empty query
// matches everything.
func (s *Searchbar) Matches(label string) bool {
	if s.query == "" {
		return true
	}
	return s.matchers[s.selected].Match(label, s.query)
}

// Filter returns the indices of labels passing the current query, in order.
func (s *Searchbar) Filter(labels []string) []int {
	out := make([]int, 0, len(labels))
	for i, l := range labels {
		if s.Matches(l) {
			out = append(out, i)
		}
	}
	return out
}

// pkg/flags/set.go
package flags

import (
	"strings"
)

// Set is an ordered collection of unique tokens.
// Tokens keep the order in which they were first added.
type Set struct {
	items []string
	seen  map[string]struct{}
}

// NewSet creates a Set holding tokens
func NewSet(tokens ...string) *Set {
	s := &Set{}
	s.Add(tokens...)
	return s
}

// Add appends tokens that are not already present.
// It reports whether anything was added.
func (s *Set) Add(tokens ...string) bool {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	added := false
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if _, ok := s.seen[tok]; ok {
			continue
		}
		s.seen[tok] = struct{}{}
		s.items = append(s.items, tok)
		added = true
	}
	return added
}

// Contains reports whether tok is in the set
func (s *Set) Contains(tok string) bool {
	if s == nil {
		return false
	}
	_, ok := s.seen[tok]
	return ok
}

// Remove deletes tok from the set, keeping the order of the rest
func (s *Set) Remove(tok string) {
	if !s.Contains(tok) {
		return
	}
	delete(s.seen, tok)
	for i, item := range s.items {
		if item == tok {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the tokens in first-seen order
func (s *Set) Items() []string {
	if len(s.items) == 0 {
		return nil
	}
	return append([]string(nil), s.items...)
}

// Len returns the number of tokens
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// String joins the tokens with spaces
func (s *Set) String() string {
	return strings.Join(s.items, " ")
}

// MarshalYAML encodes the set as a plain sequence
func (s *Set) MarshalYAML() (interface{}, error) {
	if s.Len() == 0 {
		return []string{}, nil
	}
	return s.items, nil
}

// pkg/flags/accumulator.go
package flags

import (
	"strings"
)

// Accumulator collects raw flag tokens per include target.
// Contributions are append-only and keep include-discovery order.
// Directory contributions from include-root probing are kept apart
// and emitted after every primary contribution.
type Accumulator struct {
	order   []string
	primary map[string]*Set
	dirs    map[string]*Set
}

// NewAccumulator returns an empty Accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{
		primary: make(map[string]*Set),
		dirs:    make(map[string]*Set),
	}
}

func (a *Accumulator) track(include string) {
	if _, ok := a.primary[include]; ok {
		return
	}
	if _, ok := a.dirs[include]; ok {
		return
	}
	a.order = append(a.order, include)
}

// Add appends the tokens of raw as a contribution for include.
// Empty contributions are ignored.
func (a *Accumulator) Add(include, raw string) {
	tokens := tokenize(raw)
	if len(tokens) == 0 {
		return
	}
	a.track(include)
	s, ok := a.primary[include]
	if !ok {
		s = NewSet()
		a.primary[include] = s
	}
	s.Add(tokens...)
}

// AddDir records an include-directory contribution for include
func (a *Accumulator) AddDir(include, raw string) {
	tokens := tokenize(raw)
	if len(tokens) == 0 {
		return
	}
	a.track(include)
	s, ok := a.dirs[include]
	if !ok {
		s = NewSet()
		a.dirs[include] = s
	}
	s.Add(tokens...)
}

// Resolved reports whether include received any contribution
func (a *Accumulator) Resolved(include string) bool {
	return a.HasPrimary(include) || a.dirs[include].Len() > 0
}

// HasPrimary reports whether include received a primary contribution
func (a *Accumulator) HasPrimary(include string) bool {
	s, ok := a.primary[include]
	return ok && s.Len() > 0
}

// Missing returns the includes that received nothing, in input order
func (a *Accumulator) Missing(includes []string) []string {
	var missing []string
	for _, inc := range includes {
		if !a.Resolved(inc) {
			missing = append(missing, inc)
		}
	}
	return missing
}

// Tokens returns the contributions for include
func (a *Accumulator) Tokens(include string) []string {
	var out []string
	if s, ok := a.primary[include]; ok {
		out = append(out, s.items...)
	}
	if s, ok := a.dirs[include]; ok {
		out = append(out, s.items...)
	}
	return out
}

// Raw joins every contribution into one flag string: primary
// contributions first, then directory contributions.
func (a *Accumulator) Raw() string {
	var parts []string
	for _, inc := range a.order {
		if s, ok := a.primary[inc]; ok {
			parts = append(parts, s.String())
		}
	}
	for _, inc := range a.order {
		if s, ok := a.dirs[inc]; ok {
			parts = append(parts, s.String())
		}
	}
	return strings.Join(parts, " ")
}

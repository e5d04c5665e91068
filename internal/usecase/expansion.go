package usecase

import (
	"net/url"
	"sort"
)

const (
	// ExpansionParam is the query parameter carrying expanded node IDs
	ExpansionParam = "open"
	// ToggleParam names one node to flip on top of the expanded IDs
	ToggleParam = "toggle"
)

// ExpansionState is the set of expanded tree node IDs.
// The zero value is an empty set ready to use.
type ExpansionState struct {
	ids map[string]struct{}
}

// NewExpansionState returns a state with the given IDs expanded
func NewExpansionState(ids ...string) ExpansionState {
	s := ExpansionState{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if id != "" {
			s.ids[id] = struct{}{}
		}
	}
	return s
}

// ParseExpansionState reads the expanded IDs from query values
func ParseExpansionState(values url.Values) ExpansionState {
	return NewExpansionState(values[ExpansionParam]...)
}

// Has reports whether id is expanded
func (s ExpansionState) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of expanded IDs
func (s ExpansionState) Len() int {
	return len(s.ids)
}

// Toggle flips the expansion of id in place
func (s *ExpansionState) Toggle(id string) {
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

// Toggled returns a copy of the state with id flipped
func (s ExpansionState) Toggled(id string) ExpansionState {
	next := NewExpansionState(s.IDs()...)
	next.Toggle(id)
	return next
}

// IDs returns the expanded IDs in sorted order
func (s ExpansionState) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Encode renders the state as a query string, empty when nothing is expanded
func (s ExpansionState) Encode() string {
	if len(s.ids) == 0 {
		return ""
	}
	return url.Values{ExpansionParam: s.IDs()}.Encode()
}

package recommend

import (
	"encoding/json"
	"slices"
	"sort"
)

// Set is an unordered, duplicate-free collection of career titles.
// The zero value is an empty set ready for reads.
type Set struct {
	labels map[string]struct{}
}

// NewSet returns a Set holding labels.
func NewSet(labels ...string) Set {
	s := Set{labels: make(map[string]struct{}, len(labels))}
	for _, l := range labels {
		s.add(l)
	}
	return s
}

func (s *Set) add(label string) {
	if s.labels == nil {
		s.labels = make(map[string]struct{})
	}
	s.labels[label] = struct{}{}
}

func (s Set) Contains(label string) bool {
	_, ok := s.labels[label]
	return ok
}

func (s Set) Len() int { return len(s.labels) }

func (s Set) IsEmpty() bool { return len(s.labels) == 0 }

// Labels returns the members sorted alphabetically. Never nil.
func (s Set) Labels() []string {
	out := make([]string, 0, len(s.labels))
	for l := range s.labels {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold the same labels.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s.Labels(), other.Labels())
}

// MarshalJSON encodes the set as a sorted array.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Labels())
}

func (s *Set) UnmarshalJSON(b []byte) error {
	var labels []string
	if err := json.Unmarshal(b, &labels); err != nil {
		return err
	}
	*s = NewSet(labels...)
	return nil
}

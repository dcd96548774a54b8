// Package recommend turns questionnaire answers and resume evidence into a
// set of suggested career titles using a fixed rule table.
package recommend

import (
	"github.com/UDAY704467/ai-career-guidance/internal/questionnaire"
)

// Match records one satisfied rule.
type Match struct {
	Rule  string
	Label string
}

// Engine evaluates every rule in its table. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	rules []Rule
}

// NewEngine returns an Engine over rules, or the canonical table when none
// are given.
func NewEngine(rules ...Rule) *Engine {
	if len(rules) == 0 {
		rules = CanonicalRules()
	}
	return &Engine{rules: rules}
}

// Recommend returns the union of labels of all satisfied rules. It never
// fails; no satisfied rule yields an empty, non-nil Set.
func (e *Engine) Recommend(resp questionnaire.Response, evidence []string) Set {
	set := NewSet()
	for _, m := range e.Trace(resp, evidence) {
		set.add(m.Label)
	}
	return set
}

// Trace returns the satisfied rules in table order. A label may appear more
// than once when several rules emit it.
func (e *Engine) Trace(resp questionnaire.Response, evidence []string) []Match {
	in := Input{Response: resp, Evidence: evidence}

	matches := []Match{}
	for _, r := range e.rules {
		if r.When(in) {
			matches = append(matches, Match{Rule: r.Name, Label: r.Label})
		}
	}
	return matches
}

// Package evidence finds known skill terms in resume text.
package evidence

import (
	"slices"
	"strings"
)

// DefaultVocabulary is the set of terms the recommendation rules look for.
var DefaultVocabulary = []string{"Python", "Machine Learning", "Sales", "CRM"}

// Extractor matches a fixed vocabulary against free text.
//
// Matching is a case-sensitive substring test per term: "python" does not
// count as "Python", and "Salesforce" counts as "Sales".
type Extractor struct {
	vocabulary []string
}

// NewExtractor returns an Extractor over vocabulary, or DefaultVocabulary
// when none is given. Empty and repeated terms are dropped.
func NewExtractor(vocabulary ...string) *Extractor {
	if len(vocabulary) == 0 {
		vocabulary = DefaultVocabulary
	}

	terms := make([]string, 0, len(vocabulary))
	for _, term := range vocabulary {
		if term != "" && !slices.Contains(terms, term) {
			terms = append(terms, term)
		}
	}
	return &Extractor{vocabulary: terms}
}

// Vocabulary returns a copy of the terms this extractor looks for.
func (e *Extractor) Vocabulary() []string {
	return slices.Clone(e.vocabulary)
}

// Extract returns the vocabulary terms present in text, in vocabulary order.
// The result is never nil; no match yields an empty slice.
func (e *Extractor) Extract(text string) []string {
	found := []string{}
	if text == "" {
		return found
	}
	for _, term := range e.vocabulary {
		if strings.Contains(text, term) {
			found = append(found, term)
		}
	}
	return found
}

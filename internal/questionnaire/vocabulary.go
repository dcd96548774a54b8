// Package questionnaire defines the questionnaire answers a user gives, the
// fixed vocabularies each answer must come from, and their validation.
package questionnaire

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/UDAY704467/ai-career-guidance/internal/common"
)

// Vocabulary is one question together with its declared options.
type Vocabulary struct {
	Name    string
	Prompt  string
	Options []string
}

// Contains reports whether label is one of the declared options.
// Matching is exact.
func (v Vocabulary) Contains(label string) bool {
	return slices.Contains(v.Options, label)
}

// Select parses a comma-separated answer. Each item is either a 1-based
// option number or an exact option label. Duplicates collapse; the result
// keeps first-seen order. Blank input selects nothing.
func (v Vocabulary) Select(input string) ([]string, error) {
	selected := []string{}
	for _, item := range strings.Split(input, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		label, err := v.resolve(item)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(selected, label) {
			selected = append(selected, label)
		}
	}
	return selected, nil
}

// SelectOne is Select for single-choice questions. Blank input is
// "unanswered" and returns "".
func (v Vocabulary) SelectOne(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}
	return v.resolve(input)
}

func (v Vocabulary) resolve(item string) (string, error) {
	if n, err := strconv.Atoi(item); err == nil {
		if n < 1 || n > len(v.Options) {
			return "", fmt.Errorf("%w: %s option %d out of range 1-%d", common.ErrInvalidAnswer, v.Name, n, len(v.Options))
		}
		return v.Options[n-1], nil
	}
	if v.Contains(item) {
		return item, nil
	}
	return "", fmt.Errorf("%w: %s %q", common.ErrInvalidAnswer, v.Name, item)
}

var (
	Interests = Vocabulary{
		Name:   "interests",
		Prompt: "Which areas interest you?",
		Options: []string{
			"Technology", "Finance", "Art", "Healthcare",
			"Education", "Science", "Business", "Law",
		},
	}

	Activities = Vocabulary{
		Name:   "activities",
		Prompt: "Which activities do you enjoy doing?",
		Options: []string{
			"Analyzing data", "Writing", "Designing", "Coding",
			"Public speaking", "Teaching", "Building things", "Helping people",
		},
	}

	Strengths = Vocabulary{
		Name:   "strengths",
		Prompt: "What are your top strengths?",
		Options: []string{
			"Problem-solving", "Creativity", "Communication", "Leadership",
			"Attention to detail", "Empathy", "Teamwork",
		},
	}

	WorkValues = Vocabulary{
		Name:   "work values",
		Prompt: "What matters most to you in your future job?",
		Options: []string{
			"Helping Others", "High Income", "Job Stability",
			"Work-Life Balance", "Creativity & Innovation", "Career Growth",
		},
	}

	// Personality holds the three ordered single-choice questions.
	Personality = [3]Vocabulary{
		{Name: "personality 1", Prompt: "Do you enjoy leading a team?", Options: []string{"Yes", "No"}},
		{Name: "personality 2", Prompt: "Are you more analytical or creative?", Options: []string{"Analytical", "Creative", "Both"}},
		{Name: "personality 3", Prompt: "Do you enjoy working with technology every day?", Options: []string{"Yes", "No", "Neutral"}},
	}

	// Skills are rated from MinRating to MaxRating.
	Skills = []string{"Programming", "Mathematics", "Writing", "Public Speaking", "Design", "Sales"}
)

const (
	MinRating = 1
	MaxRating = 10
)

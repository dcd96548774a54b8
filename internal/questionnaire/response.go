package questionnaire

import (
	"fmt"
	"maps"
	"slices"

	"github.com/UDAY704467/ai-career-guidance/internal/common"
)

// Response is one user's answers. It has no identity until archived.
//
// Set-valued fields may be empty. A personality answer of "" means the
// question was left unanswered. Skills maps a declared skill to its rating.
type Response struct {
	Interests   []string
	Activities  []string
	Strengths   []string
	WorkValues  []string
	Personality [3]string
	Skills      map[string]int
}

// Validate checks every answer against its vocabulary and returns an error
// wrapping common.ErrInvalidAnswer for the first offending value.
func (r Response) Validate() error {
	sets := []struct {
		vocab  Vocabulary
		values []string
	}{
		{Interests, r.Interests},
		{Activities, r.Activities},
		{Strengths, r.Strengths},
		{WorkValues, r.WorkValues},
	}
	for _, s := range sets {
		for _, v := range s.values {
			if !s.vocab.Contains(v) {
				return fmt.Errorf("%w: %s %q", common.ErrInvalidAnswer, s.vocab.Name, v)
			}
		}
	}

	for i, answer := range r.Personality {
		if answer != "" && !Personality[i].Contains(answer) {
			return fmt.Errorf("%w: %s %q", common.ErrInvalidAnswer, Personality[i].Name, answer)
		}
	}

	for skill, rating := range r.Skills {
		if !slices.Contains(Skills, skill) {
			return fmt.Errorf("%w: unknown skill %q", common.ErrInvalidAnswer, skill)
		}
		if rating < MinRating || rating > MaxRating {
			return fmt.Errorf("%w: %s rating %d outside %d-%d", common.ErrInvalidAnswer, skill, rating, MinRating, MaxRating)
		}
	}
	return nil
}

// IsEmpty reports whether nothing has been answered yet.
func (r Response) IsEmpty() bool {
	return len(r.Interests) == 0 && len(r.Activities) == 0 &&
		len(r.Strengths) == 0 && len(r.WorkValues) == 0 &&
		r.Personality == [3]string{} && len(r.Skills) == 0
}

// Clone returns a deep copy so archived or reported values cannot change
// underneath the caller.
func (r Response) Clone() Response {
	return Response{
		Interests:   slices.Clone(r.Interests),
		Activities:  slices.Clone(r.Activities),
		Strengths:   slices.Clone(r.Strengths),
		WorkValues:  slices.Clone(r.WorkValues),
		Personality: r.Personality,
		Skills:      maps.Clone(r.Skills),
	}
}

// SkillNames returns the rated skills sorted by name.
func (r Response) SkillNames() []string {
	return slices.Sorted(maps.Keys(r.Skills))
}

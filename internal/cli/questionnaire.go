package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/UDAY704467/ai-career-guidance/internal/common"
	"github.com/UDAY704467/ai-career-guidance/internal/questionnaire"
)

// Questionnaire walks the user through every question. Invalid answers are
// asked again; the previous answers are replaced only when all questions
// were answered.
func (a *App) Questionnaire(ctx context.Context) error {
	if _, err := a.session.Require(); err != nil {
		return a.fail(err)
	}

	var resp questionnaire.Response
	var err error

	sets := []struct {
		vocab questionnaire.Vocabulary
		dst   *[]string
	}{
		{questionnaire.Interests, &resp.Interests},
		{questionnaire.Activities, &resp.Activities},
		{questionnaire.Strengths, &resp.Strengths},
		{questionnaire.WorkValues, &resp.WorkValues},
	}
	for _, s := range sets {
		if *s.dst, err = a.askMany(s.vocab); err != nil {
			return a.fail(err)
		}
	}

	for i, q := range questionnaire.Personality {
		if resp.Personality[i], err = a.askOne(q); err != nil {
			return a.fail(err)
		}
	}

	if resp.Skills, err = a.askSkills(); err != nil {
		return a.fail(err)
	}

	if err := resp.Validate(); err != nil {
		return a.fail(err)
	}
	a.resp = resp

	fmt.Fprintln(a.out, "Answers recorded.")
	return a.Show(ctx)
}

func (a *App) ask(v questionnaire.Vocabulary, hint string) (string, error) {
	var sb strings.Builder
	sb.WriteString(v.Prompt + " " + hint)
	for i, opt := range v.Options {
		fmt.Fprintf(&sb, "\n  %d) %s", i+1, opt)
	}
	return GetSimpleText(a.reader, sb.String(), a.out)
}

func (a *App) askMany(v questionnaire.Vocabulary) ([]string, error) {
	for {
		line, err := a.ask(v, "(numbers or names, comma-separated; blank for none)")
		if err != nil {
			return nil, err
		}
		selected, err := v.Select(line)
		if errors.Is(err, common.ErrInvalidAnswer) {
			fmt.Fprintln(a.out, "Invalid answer:", err)
			continue
		}
		return selected, err
	}
}

func (a *App) askOne(v questionnaire.Vocabulary) (string, error) {
	for {
		line, err := a.ask(v, "(one choice; blank to skip)")
		if err != nil {
			return "", err
		}
		answer, err := v.SelectOne(line)
		if errors.Is(err, common.ErrInvalidAnswer) {
			fmt.Fprintln(a.out, "Invalid answer:", err)
			continue
		}
		return answer, err
	}
}

func (a *App) askSkills() (map[string]int, error) {
	skills := make(map[string]int)
	for _, skill := range questionnaire.Skills {
		prompt := fmt.Sprintf("Rate your %s skill (%d-%d; blank to skip)", skill, questionnaire.MinRating, questionnaire.MaxRating)
		for {
			line, err := GetSimpleText(a.reader, prompt, a.out)
			if err != nil {
				return nil, err
			}
			if line == "" {
				break
			}
			n, err := strconv.Atoi(line)
			if err != nil || n < questionnaire.MinRating || n > questionnaire.MaxRating {
				fmt.Fprintf(a.out, "Invalid answer: enter a number from %d to %d\n", questionnaire.MinRating, questionnaire.MaxRating)
				continue
			}
			skills[skill] = n
			break
		}
	}
	return skills, nil
}

// Show prints the preferences summary.
func (a *App) Show(ctx context.Context) error {
	if _, err := a.session.Require(); err != nil {
		return a.fail(err)
	}

	join := func(items []string) string {
		if len(items) == 0 {
			return "(none)"
		}
		return strings.Join(items, ", ")
	}

	fmt.Fprintln(a.out, "Your preferences summary:")
	fmt.Fprintln(a.out, "  Interests:   ", join(a.resp.Interests))
	fmt.Fprintln(a.out, "  Activities:  ", join(a.resp.Activities))
	fmt.Fprintln(a.out, "  Strengths:   ", join(a.resp.Strengths))
	fmt.Fprintln(a.out, "  Work values: ", join(a.resp.WorkValues))
	for i, q := range questionnaire.Personality {
		answer := a.resp.Personality[i]
		if answer == "" {
			answer = "(not answered)"
		}
		fmt.Fprintf(a.out, "  %s %s\n", q.Prompt, answer)
	}
	for _, name := range a.resp.SkillNames() {
		fmt.Fprintf(a.out, "  %s: %d/%d\n", name, a.resp.Skills[name], questionnaire.MaxRating)
	}
	if a.resume != "" {
		fmt.Fprintf(a.out, "  Resume: %s (keywords: %s)\n", a.resume, join(a.evidence))
	}
	return nil
}

// Clear discards the answers and resume evidence.
func (a *App) Clear(ctx context.Context) error {
	if _, err := a.session.Require(); err != nil {
		return a.fail(err)
	}
	a.reset()
	fmt.Fprintln(a.out, "Answers cleared.")
	return nil
}

func (a *App) reset() {
	a.resp = questionnaire.Response{}
	a.evidence = []string{}
	a.resume = ""
}

package recommend

import (
	"slices"

	"github.com/UDAY704467/ai-career-guidance/internal/questionnaire"
)

// Input is everything a rule may look at.
type Input struct {
	Response questionnaire.Response
	Evidence []string
}

// Rule emits Label when When holds.
type Rule struct {
	Name  string
	Label string
	When  func(Input) bool
}

func hasInterest(label string) func(Input) bool {
	return func(in Input) bool { return slices.Contains(in.Response.Interests, label) }
}

func hasActivity(label string) func(Input) bool {
	return func(in Input) bool { return slices.Contains(in.Response.Activities, label) }
}

func hasStrength(label string) func(Input) bool {
	return func(in Input) bool { return slices.Contains(in.Response.Strengths, label) }
}

func hasWorkValue(label string) func(Input) bool {
	return func(in Input) bool { return slices.Contains(in.Response.WorkValues, label) }
}

func answered(i int, answer string) func(Input) bool {
	return func(in Input) bool { return in.Response.Personality[i] == answer }
}

func hasEvidence(term string) func(Input) bool {
	return func(in Input) bool { return slices.Contains(in.Evidence, term) }
}

func allOf(preds ...func(Input) bool) func(Input) bool {
	return func(in Input) bool {
		for _, p := range preds {
			if !p(in) {
				return false
			}
		}
		return true
	}
}

func anyOf(preds ...func(Input) bool) func(Input) bool {
	return func(in Input) bool {
		for _, p := range preds {
			if p(in) {
				return true
			}
		}
		return false
	}
}

// CanonicalRules returns the built-in rule table in evaluation order.
func CanonicalRules() []Rule {
	return []Rule{
		{Name: "technology-problem-solving", Label: "Software Developer",
			When: allOf(hasInterest("Technology"), hasStrength("Problem-solving"))},
		{Name: "finance-analyzing-data", Label: "Financial Analyst",
			When: allOf(hasInterest("Finance"), hasActivity("Analyzing data"))},
		{Name: "art-creativity", Label: "Graphic Designer",
			When: allOf(hasInterest("Art"), hasStrength("Creativity"))},
		{Name: "helping-communication", Label: "HR Manager",
			When: allOf(hasWorkValue("Helping Others"), hasStrength("Communication"))},
		{Name: "leader-analytical", Label: "Project Manager",
			When: allOf(answered(0, "Yes"), answered(1, "Analytical"))},
		{Name: "creative", Label: "Marketing Strategist",
			When: answered(1, "Creative")},
		{Name: "daily-technology", Label: "IT Consultant",
			When: answered(2, "Yes")},
		{Name: "resume-data-science", Label: "Data Scientist",
			When: anyOf(hasEvidence("Python"), hasEvidence("Machine Learning"))},
		{Name: "resume-sales", Label: "Sales Executive",
			When: anyOf(hasEvidence("Sales"), hasEvidence("CRM"))},
	}
}

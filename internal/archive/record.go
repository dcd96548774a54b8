// Package archive persists completed sessions as immutable JSON documents,
// one per save, on the local filesystem or in an S3 bucket.
package archive

import (
	"maps"
	"slices"
	"time"

	"github.com/UDAY704467/ai-career-guidance/internal/questionnaire"
	"github.com/UDAY704467/ai-career-guidance/internal/recommend"
)

// Record is one archived session. Field names are part of the document
// format and must not change.
type Record struct {
	User           string         `json:"user"`
	Interests      []string       `json:"interests"`
	Activities     []string       `json:"activities"`
	Strengths      []string       `json:"strengths"`
	WorkValues     []string       `json:"work_values"`
	Personality    []string       `json:"personality"`
	Skills         map[string]int `json:"skills"`
	ResumeKeywords []string       `json:"resume_keywords"`
	Suggestions    []string       `json:"suggestions"`
	Timestamp      time.Time      `json:"timestamp"`
}

// NewRecord snapshots a session. Inputs are copied; empty collections are
// encoded as [] and {} rather than null. The timestamp is stored in UTC.
func NewRecord(user string, resp questionnaire.Response, evidence []string, suggestions recommend.Set, ts time.Time) Record {
	skills := maps.Clone(resp.Skills)
	if skills == nil {
		skills = map[string]int{}
	}

	return Record{
		User:           user,
		Interests:      nonNil(resp.Interests),
		Activities:     nonNil(resp.Activities),
		Strengths:      nonNil(resp.Strengths),
		WorkValues:     nonNil(resp.WorkValues),
		Personality:    resp.Personality[:],
		Skills:         skills,
		ResumeKeywords: nonNil(evidence),
		Suggestions:    suggestions.Labels(),
		Timestamp:      ts.UTC(),
	}
}

// Response rebuilds the questionnaire answers held by the record.
func (r Record) Response() questionnaire.Response {
	resp := questionnaire.Response{
		Interests:  slices.Clone(r.Interests),
		Activities: slices.Clone(r.Activities),
		Strengths:  slices.Clone(r.Strengths),
		WorkValues: slices.Clone(r.WorkValues),
		Skills:     maps.Clone(r.Skills),
	}
	copy(resp.Personality[:], r.Personality)
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

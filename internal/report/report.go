// Package report renders a human-readable text summary of a session for
// download.
package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/UDAY704467/ai-career-guidance/internal/archive"
	"github.com/UDAY704467/ai-career-guidance/internal/common"
	"github.com/UDAY704467/ai-career-guidance/internal/filex"
	"github.com/UDAY704467/ai-career-guidance/internal/questionnaire"
)

// Report carries the same fields as an archived record.
type Report struct {
	archive.Record
}

// New wraps a record for rendering.
func New(rec archive.Record) Report {
	return Report{Record: rec}
}

// PersonalityLine is one personality question with its answer.
type PersonalityLine struct {
	Question string
	Answer   string
}

// SkillLine is one rated skill.
type SkillLine struct {
	Name   string
	Rating int
}

// PersonalityLines pairs each answer with its question.
func (r Report) PersonalityLines() []PersonalityLine {
	lines := make([]PersonalityLine, 0, len(questionnaire.Personality))
	for i, q := range questionnaire.Personality {
		answer := ""
		if i < len(r.Personality) {
			answer = r.Personality[i]
		}
		if answer == "" {
			answer = "(not answered)"
		}
		lines = append(lines, PersonalityLine{Question: q.Prompt, Answer: answer})
	}
	return lines
}

// SkillLines lists rated skills by name.
func (r Report) SkillLines() []SkillLine {
	resp := r.Response()
	lines := make([]SkillLine, 0, len(resp.Skills))
	for _, name := range resp.SkillNames() {
		lines = append(lines, SkillLine{Name: name, Rating: resp.Skills[name]})
	}
	return lines
}

var funcs = template.FuncMap{
	"join": func(items []string) string {
		if len(items) == 0 {
			return "(none)"
		}
		return strings.Join(items, ", ")
	},
	"stamp": func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
}

var tmpl = template.Must(template.New("report").Funcs(funcs).Parse(`Career Guidance Report
======================

User:       {{.User}}
Generated:  {{stamp .Timestamp}}

Preferences
-----------
Interests:   {{join .Interests}}
Activities:  {{join .Activities}}
Strengths:   {{join .Strengths}}
Work values: {{join .WorkValues}}

Personality
-----------
{{range .PersonalityLines}}{{.Question}} {{.Answer}}
{{end}}
Skills
------
{{range .SkillLines}}{{printf "%-16s %2d/10" .Name .Rating}}
{{else}}(none rated)
{{end}}
Resume keywords: {{join .ResumeKeywords}}

Suggested careers
-----------------
{{range .Suggestions}}- {{.}}
{{else}}No matching careers found.
{{end}}
Explore certification platforms like Coursera, LinkedIn Learning and Internshala to get started.
Note: these suggestions come from simplified rule-based logic.
`))

// Render writes the text report to w.
func Render(w io.Writer, r Report) error {
	if err := tmpl.Execute(w, r); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// Name returns the report file name for a record: the archive key with a
// .txt extension.
func Name(r Report) string {
	key := archive.Key(r.User, r.Timestamp)
	return strings.TrimSuffix(key, ".json") + ".txt"
}

// WriteFile renders r into dir atomically and returns the file path.
func WriteFile(dir string, r Report) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, r); err != nil {
		return "", err
	}

	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: report dir: %w", common.ErrStorageUnavailable, err)
	}

	path := filepath.Join(abs, Name(r))
	if err := filex.WriteFileAtomic(path, buf.Bytes(), 0o600); err != nil {
		return "", fmt.Errorf("%w: write report: %w", common.ErrStorageUnavailable, err)
	}
	return path, nil
}

package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Resume analyses the document at path and keeps the evidence found. A
// document that cannot be read leaves no evidence and only warns.
func (a *App) Resume(ctx context.Context, path string) error {
	if _, err := a.session.Require(); err != nil {
		return a.fail(err)
	}

	if path == "" {
		var err error
		if path, err = GetSimpleText(a.reader, "Path to your resume (pdf, docx or txt)", a.out); err != nil {
			return a.fail(err)
		}
		if path == "" {
			fmt.Fprintln(a.out, "No resume given.")
			return nil
		}
	}

	res, err := a.svc.AnalyzeResumeFile(ctx, a.session, path)
	if err != nil {
		return a.fail(err)
	}

	a.evidence = res.Evidence

	if res.Warning != nil {
		a.resume = ""
		fmt.Fprintln(a.out, "Warning: could not read the resume, continuing without it:", res.Warning)
		return nil
	}
	a.resume = filepath.Base(path)
	if len(res.Evidence) == 0 {
		fmt.Fprintln(a.out, "Resume read. No known keywords found.")
		return nil
	}
	fmt.Fprintln(a.out, "Resume read. Keywords found:", strings.Join(res.Evidence, ", "))
	return nil
}

// Recommend prints the career suggestions for the current answers.
func (a *App) Recommend(ctx context.Context) error {
	set, err := a.svc.Recommend(ctx, a.session, a.resp, a.evidence)
	if err != nil {
		return a.fail(err)
	}

	user, _ := a.session.User()
	if set.IsEmpty() {
		fmt.Fprintln(a.out, "No matching careers found for your answers.")
		return nil
	}

	fmt.Fprintf(a.out, "Hi %s, here are some suggestions for you:\n", user)
	for _, label := range set.Labels() {
		fmt.Fprintln(a.out, "  -", label)
	}
	fmt.Fprintln(a.out, "Explore certification platforms like Coursera, LinkedIn Learning and Internshala to get started.")
	return nil
}

// Report writes a text report into dir, or the configured report directory.
func (a *App) Report(ctx context.Context, dir string) error {
	if dir == "" {
		dir = a.reportDir
	}
	path, err := a.svc.Report(ctx, a.session, dir, a.resp, a.evidence)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Report written to", path)
	return nil
}

// Save archives the session.
func (a *App) Save(ctx context.Context) error {
	key, err := a.svc.Save(ctx, a.session, a.resp, a.evidence)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Responses saved as", key)
	return nil
}

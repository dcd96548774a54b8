package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/UDAY704467/ai-career-guidance/internal/archive"
	"github.com/UDAY704467/ai-career-guidance/internal/common"
	"github.com/UDAY704467/ai-career-guidance/internal/questionnaire"
	"github.com/UDAY704467/ai-career-guidance/internal/recommend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ts = time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC)

func TestRender_Full(t *testing.T) {
	resp := questionnaire.Response{
		Interests:   []string{"Finance"},
		Activities:  []string{"Analyzing data"},
		Strengths:   []string{"Communication"},
		WorkValues:  []string{"Helping Others"},
		Personality: [3]string{"No", "Both", ""},
		Skills:      map[string]int{"Sales": 4, "Mathematics": 9},
	}
	set := recommend.NewSet("HR Manager", "Financial Analyst")

	var sb strings.Builder
	require.NoError(t, Render(&sb, New(archive.NewRecord("alice", resp, []string{"CRM"}, set, ts))))
	out := sb.String()

	assert.Contains(t, out, "User:       alice")
	assert.Contains(t, out, "Generated:  2026-10-15T12:30:00Z")
	assert.Contains(t, out, "Interests:   Finance")
	assert.Contains(t, out, "Work values: Helping Others")
	assert.Contains(t, out, "Do you enjoy leading a team? No")
	assert.Contains(t, out, "Are you more analytical or creative? Both")
	assert.Contains(t, out, "Do you enjoy working with technology every day? (not answered)")
	assert.Contains(t, out, "Resume keywords: CRM")
	assert.Contains(t, out, "- Financial Analyst\n- HR Manager\n")
	assert.Contains(t, out, "Coursera")

	// skills sorted by name
	assert.Less(t, strings.Index(out, "Mathematics"), strings.Index(out, "Sales "))
}

func TestRender_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Render(&sb, New(archive.NewRecord("bob", questionnaire.Response{}, nil, recommend.NewSet(), ts))))
	out := sb.String()

	assert.Contains(t, out, "No matching careers found.")
	assert.Contains(t, out, "Interests:   (none)")
	assert.Contains(t, out, "(none rated)")
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	r := New(archive.NewRecord("alice", questionnaire.Response{}, nil, recommend.NewSet("IT Consultant"), ts))

	path, err := WriteFile(dir, r)
	require.NoError(t, err)
	assert.Regexp(t, `alice_20261015T123000\.000000000Z_[0-9a-f]{8}\.txt$`, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- IT Consultant")
}

func TestWriteFile_BadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	_, err := WriteFile(file, New(archive.Record{User: "alice"}))
	require.ErrorIs(t, err, common.ErrStorageUnavailable)
}

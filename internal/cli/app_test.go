package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/UDAY704467/ai-career-guidance/internal/archive"
	"github.com/UDAY704467/ai-career-guidance/internal/common"
	"github.com/UDAY704467/ai-career-guidance/internal/config"
	"github.com/UDAY704467/ai-career-guidance/internal/credentials"
	"github.com/UDAY704467/ai-career-guidance/internal/cryptox"
	"github.com/UDAY704467/ai-career-guidance/internal/guidance"
	"github.com/UDAY704467/ai-career-guidance/internal/resume"
	"github.com/UDAY704467/ai-career-guidance/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	app        *App
	out        *bytes.Buffer
	archiveDir string
	reportDir  string
}

func newTestApp(t *testing.T, script ...string) *testEnv {
	t.Helper()
	captureOutput(t)
	stubTerminal(t, false, nil, nil)

	dir := t.TempDir()
	store, err := credentials.NewFileStore(filepath.Join(dir, "users.json"), cryptox.NewBcryptHasher(bcrypt.MinCost))
	require.NoError(t, err)
	arch, err := archive.NewFileArchiver(filepath.Join(dir, "responses"))
	require.NoError(t, err)

	svc := guidance.NewService(guidance.Deps{Resumes: resume.NewExtractor(), Archiver: arch})

	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	reportDir := filepath.Join(dir, "reports")

	app := newApp(store, session.NewAuthenticator(store, nil), svc, nil, reportDir, in, out)
	return &testEnv{app: app, out: out, archiveDir: arch.Dir(), reportDir: reportDir}
}

func TestApp_FullSession(t *testing.T) {
	resumePath := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(resumePath, []byte("Experienced in Sales and CRM tools"), 0o600))

	env := newTestApp(t,
		"recommend",
		"register", "alice", "pw",
		"register", "alice", "other",
		"login", "alice", "wrong",
		"login", "alice", "pw",
		"q",
		"Cooking", "1", // interests: invalid then Technology
		"",                // activities
		"Problem-solving", // strengths
		"",                // work values
		"", "", "", // personality
		"11", "7", "", "", "", "", "", // skills: invalid then Programming=7
		"recommend",
		"resume "+resumePath,
		"r",
		"save",
		"report",
		"logout",
		"recommend",
		"exit",
	)

	env.app.Run(context.Background())
	out := env.out.String()

	assert.Contains(t, out, "Error: please log in first")
	assert.Contains(t, out, "Registered. You can now log in.")
	assert.Contains(t, out, "Error: username already exists")
	assert.Contains(t, out, "Error: invalid username or password")
	assert.Contains(t, out, "Welcome, alice!")
	assert.Contains(t, out, "Invalid answer:")
	assert.Contains(t, out, "Interests:    Technology")
	assert.Contains(t, out, "Programming: 7/10")
	assert.Contains(t, out, "Resume read. Keywords found: Sales, CRM")
	assert.Contains(t, out, "  - Sales Executive\n  - Software Developer\n")
	assert.Contains(t, out, "Responses saved as alice_")
	assert.Contains(t, out, "Report written to")
	assert.Contains(t, out, "Logged out.")
	assert.Equal(t, 2, strings.Count(out, "Error: please log in first"))

	entries, err := os.ReadDir(env.archiveDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(env.archiveDir, entries[0].Name()))
	require.NoError(t, err)
	rec, err := archive.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "alice", rec.User)
	assert.Equal(t, []string{"Technology"}, rec.Interests)
	assert.Equal(t, []string{"Sales", "CRM"}, rec.ResumeKeywords)
	assert.Equal(t, []string{"Sales Executive", "Software Developer"}, rec.Suggestions)
	assert.Equal(t, map[string]int{"Programming": 7}, rec.Skills)

	reports, err := os.ReadDir(env.reportDir)
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestApp_EmptyRecommendationAndBadResume(t *testing.T) {
	env := newTestApp(t,
		"register", "bob", "pw",
		"login", "bob", "pw",
		"resume "+filepath.Join(t.TempDir(), "missing.pdf"),
		"show",
		"recommend",
		"clear",
		"show",
	)

	env.app.Run(context.Background())
	out := env.out.String()

	assert.Contains(t, out, "Warning: could not read the resume")
	assert.NotContains(t, out, "Resume: missing.pdf", "an unreadable resume is not reported as read")
	assert.Contains(t, out, "No matching careers found for your answers.")
	assert.Contains(t, out, "Answers cleared.")
	assert.Contains(t, out, "Interests:    (none)")
}

func TestApp_LoginAsOtherUserResetsAnswers(t *testing.T) {
	env := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, env.app.auth.Register(ctx, "alice", []byte("pw")))
	require.NoError(t, env.app.auth.Register(ctx, "bob", []byte("pw")))
	require.NoError(t, env.app.auth.Login(ctx, env.app.session, "alice", []byte("pw")))
	env.app.resp.Interests = []string{"Art"}

	env.app.reader = rdr("bob\npw\n")
	require.NoError(t, env.app.Login(ctx))
	assert.Empty(t, env.app.resp.Interests)
	assert.Equal(t, "(bob) ", env.app.status())
}

func TestApp_LoggedOutGuards(t *testing.T) {
	env := newTestApp(t)
	ctx := context.Background()

	for name, fn := range map[string]func() error{
		"questionnaire": func() error { return env.app.Questionnaire(ctx) },
		"resume":        func() error { return env.app.Resume(ctx, "cv.pdf") },
		"recommend":     func() error { return env.app.Recommend(ctx) },
		"show":          func() error { return env.app.Show(ctx) },
		"report":        func() error { return env.app.Report(ctx, "") },
		"save":          func() error { return env.app.Save(ctx) },
		"clear":         func() error { return env.app.Clear(ctx) },
		"logout":        func() error { return env.app.Logout(ctx) },
	} {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, fn(), common.ErrNotAuthenticated)
		})
	}
	assert.Equal(t, "", env.app.status())
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "please log in first", userMessage(common.ErrNotAuthenticated))
	assert.Equal(t, "invalid username or password", userMessage(common.ErrInvalidCredentials))
	assert.Equal(t, "username already exists", userMessage(common.ErrDuplicateUser))
	assert.Equal(t, "boom", userMessage(errors.New("boom")))
}

func TestNewApp_Backends(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DataDir = dir
	cfg.BcryptCost = bcrypt.MinCost
	cfg.CredentialBackend = config.BackendSQLite
	cfg.Resolve()

	app, err := NewApp(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.NoError(t, app.store.Close())
	assert.FileExists(t, cfg.CredentialDB)
	assert.DirExists(t, cfg.ArchiveDir)

	bad := *cfg
	bad.CredentialBackend = "ldap"
	_, err = NewApp(context.Background(), &bad, nil)
	require.Error(t, err)

	bad = *cfg
	bad.CredentialBackend = config.BackendFile
	bad.ArchiveBackend = "tape"
	_, err = NewApp(context.Background(), &bad, nil)
	require.Error(t, err)

	bad = *cfg
	bad.HashAlgorithm = "md5"
	_, err = NewApp(context.Background(), &bad, nil)
	require.Error(t, err)
}

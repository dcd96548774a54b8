package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/UDAY704467/ai-career-guidance/internal/archive"
	"github.com/UDAY704467/ai-career-guidance/internal/config"
	"github.com/UDAY704467/ai-career-guidance/internal/credentials"
	"github.com/UDAY704467/ai-career-guidance/internal/cryptox"
	"github.com/UDAY704467/ai-career-guidance/internal/guidance"
	"github.com/UDAY704467/ai-career-guidance/internal/logging"
	"github.com/UDAY704467/ai-career-guidance/internal/questionnaire"
	"github.com/UDAY704467/ai-career-guidance/internal/resume"
	"github.com/UDAY704467/ai-career-guidance/internal/session"
)

// App is one interactive session: a logged-in identity plus the answers and
// resume evidence gathered so far.
type App struct {
	store     credentials.Store
	auth      *session.Authenticator
	svc       *guidance.Service
	session   *session.Session
	logger    logging.Logger
	reportDir string

	reader *bufio.Reader
	out    io.Writer

	resp     questionnaire.Response
	evidence []string
	resume   string
}

// NewApp wires the credential store, archive and guidance service selected
// by cfg and returns an App reading stdin and writing stdout.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	hasher, err := cryptox.NewHasher(cfg.HashAlgorithm, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	store, err := openStore(ctx, cfg, hasher)
	if err != nil {
		return nil, err
	}

	arch, err := openArchiver(ctx, cfg)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	svc := guidance.NewService(guidance.Deps{
		Resumes: resume.NewExtractor(
			resume.WithMaxBytes(cfg.MaxResumeBytes),
			resume.WithTimeout(cfg.ExtractTimeout),
		),
		Archiver: arch,
		Logger:   logger,
	})

	return newApp(store, session.NewAuthenticator(store, logger), svc, logger, cfg.ReportDir, os.Stdin, os.Stdout), nil
}

func newApp(store credentials.Store, auth *session.Authenticator, svc *guidance.Service, logger logging.Logger, reportDir string, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	return &App{
		store:     store,
		auth:      auth,
		svc:       svc,
		session:   session.New(),
		logger:    logger,
		reportDir: reportDir,
		reader:    bufio.NewReader(in),
		out:       out,
		evidence:  []string{},
	}
}

func openStore(ctx context.Context, cfg *config.Config, hasher cryptox.Hasher) (credentials.Store, error) {
	switch cfg.CredentialBackend {
	case config.BackendFile, "":
		return credentials.NewFileStore(cfg.CredentialFile, hasher)
	case config.BackendSQLite:
		return credentials.OpenSQLiteStore(ctx, cfg.CredentialDB, hasher)
	default:
		return nil, fmt.Errorf("unsupported credential backend %q", cfg.CredentialBackend)
	}
}

func openArchiver(ctx context.Context, cfg *config.Config) (archive.Archiver, error) {
	switch cfg.ArchiveBackend {
	case config.BackendFile, "":
		return archive.NewFileArchiver(cfg.ArchiveDir)
	case config.BackendS3:
		return archive.NewS3Archiver(ctx, archive.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Prefix:    cfg.S3Prefix,
		})
	default:
		return nil, fmt.Errorf("unsupported archive backend %q", cfg.ArchiveBackend)
	}
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Error(ctx, "close credential store", "err", err)
		}
	}()

	fmt.Fprintln(a.out, "AI-Enhanced Career Guidance (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.User()
	return ok
}

func (a *App) status() string {
	if user, ok := a.session.User(); ok {
		return "(" + user + ") "
	}
	return ""
}

package credentials

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/UDAY704467/ai-career-guidance/internal/common"
	"github.com/UDAY704467/ai-career-guidance/internal/cryptox"
	"github.com/UDAY704467/ai-career-guidance/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLiteStore keeps credentials in the "credentials" table.
type SQLiteStore struct {
	db     *sql.DB
	hasher cryptox.Hasher
}

var _ Store = (*SQLiteStore)(nil)

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, "migrations")
}

// OpenSQLiteStore opens (creating if needed) the SQLite database at dsn and
// migrates it.
func OpenSQLiteStore(ctx context.Context, dsn string, hasher cryptox.Hasher) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, unavailable("open credential db", err)
	}
	// one writer at a time inside the process; SQLite locking covers the rest
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, unavailable("migrate credential db", err)
	}
	return NewSQLiteStore(db, hasher), nil
}

// NewSQLiteStore wraps an already migrated database.
func NewSQLiteStore(db *sql.DB, hasher cryptox.Hasher) *SQLiteStore {
	return &SQLiteStore{db: db, hasher: hasher}
}

func (s *SQLiteStore) Register(ctx context.Context, username string, password []byte) error {
	if err := validate(username, password); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM credentials WHERE username = ?`, username).Scan(&exists)
		if err == nil {
			return common.ErrDuplicateUser
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO credentials (username, password_hash) VALUES (?, ?)`, username, hash)
		return err
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrDuplicateUser), isUniqueViolation(err):
		return common.ErrDuplicateUser
	default:
		return unavailable("register", err)
	}
}

func (s *SQLiteStore) Verify(ctx context.Context, username string, password []byte) (bool, error) {
	if username == "" || len(password) == 0 {
		return false, nil
	}

	var hash string
	err := s.db.QueryRowContext(ctx,
		`SELECT password_hash FROM credentials WHERE username = ?`, username).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, unavailable("verify", err)
	}

	match, err := cryptox.Verify(hash, password)
	if err != nil {
		return false, unavailable("stored hash for "+username, err)
	}
	return match, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// isUniqueViolation catches the race where another process inserted the
// same username between our SELECT and INSERT.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

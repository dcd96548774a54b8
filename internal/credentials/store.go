// Package credentials implements the credential store: a durable mapping from
// username to salted password hash with registration and verification.
//
// Two backends are provided. FileStore keeps the whole mapping in a single
// JSON document that is loaded fully and rewritten atomically on every
// mutation. SQLiteStore keeps it in a SQLite table managed by goose
// migrations. Both serialize registration so concurrent processes never lose
// an update.
package credentials

import (
	"context"
	"fmt"

	"github.com/UDAY704467/ai-career-guidance/internal/common"
)

// Store registers and verifies credentials.
//
// Register fails with common.ErrDuplicateUser when the username is taken,
// leaving the store untouched. Verify returns (false, nil) for an unknown
// username or a wrong password. Storage failures wrap
// common.ErrStorageUnavailable.
type Store interface {
	Register(ctx context.Context, username string, password []byte) error
	Verify(ctx context.Context, username string, password []byte) (bool, error)
	Close() error
}

func validate(username string, password []byte) error {
	if username == "" {
		return fmt.Errorf("%w: empty username", common.ErrInvalidInput)
	}
	if len(password) == 0 {
		return fmt.Errorf("%w: empty password", common.ErrInvalidInput)
	}
	return nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, common.ErrStorageUnavailable, err)
}

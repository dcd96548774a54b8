package archive

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/UDAY704467/ai-career-guidance/internal/common"
	"github.com/UDAY704467/ai-career-guidance/internal/filex"
)

// keyAttempts bounds retries when a freshly derived key already exists.
const keyAttempts = 3

// FileArchiver writes each record to <dir>/<key>.
type FileArchiver struct {
	dir string
	key func(rec Record) string
}

var _ Archiver = (*FileArchiver)(nil)

// NewFileArchiver returns a FileArchiver rooted at dir, creating it if needed.
func NewFileArchiver(dir string) (*FileArchiver, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: archive dir: %w", common.ErrStorageUnavailable, err)
	}
	return &FileArchiver{
		dir: abs,
		key: func(rec Record) string { return Key(rec.User, rec.Timestamp) },
	}, nil
}

// Dir returns the absolute archive directory.
func (a *FileArchiver) Dir() string { return a.dir }

// Archive publishes the record atomically. Existing documents are never
// overwritten.
func (a *FileArchiver) Archive(ctx context.Context, rec Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := Encode(rec)
	if err != nil {
		return "", err
	}

	for i := 0; i < keyAttempts; i++ {
		key := a.key(rec)
		path := filepath.Join(a.dir, key)

		exists, err := filex.Exists(path)
		if err != nil {
			return "", fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
		}
		if exists {
			continue
		}

		if err := filex.WriteFileAtomic(path, data, 0o600); err != nil {
			return "", fmt.Errorf("%w: write %s: %w", common.ErrStorageUnavailable, key, err)
		}
		return key, nil
	}

	return "", fmt.Errorf("%w: %w", common.ErrStorageUnavailable, errors.New("could not derive an unused key"))
}

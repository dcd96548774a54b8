package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/UDAY704467/ai-career-guidance/internal/common"
	"github.com/UDAY704467/ai-career-guidance/internal/cryptox"
	"github.com/UDAY704467/ai-career-guidance/internal/filex"
)

// FileStore keeps credentials in one JSON document: {"username": "hash"}.
//
// Every operation reloads the document, so changes made by other processes
// are always seen. Mutations hold an exclusive advisory lock on a sidecar
// "<path>.lock" file for the whole load-mutate-persist cycle; reads hold a
// shared lock.
type FileStore struct {
	path     string
	lockPath string
	hasher   cryptox.Hasher
	mu       sync.RWMutex
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a FileStore backed by path, creating the parent
// directory if needed. The document itself is created on first registration.
func NewFileStore(path string, hasher cryptox.Hasher) (*FileStore, error) {
	if _, err := filex.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, unavailable("credential dir", err)
	}
	return &FileStore{path: path, lockPath: path + ".lock", hasher: hasher}, nil
}

func (s *FileStore) Register(ctx context.Context, username string, password []byte) error {
	if err := validate(username, password); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// hashing is slow; keep it outside the critical section
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := lockFile(s.lockPath, true)
	if err != nil {
		return unavailable("lock credential store", err)
	}
	defer unlock()

	users, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := users[username]; ok {
		return common.ErrDuplicateUser
	}

	users[username] = hash
	return s.persist(users)
}

func (s *FileStore) Verify(ctx context.Context, username string, password []byte) (bool, error) {
	if username == "" || len(password) == 0 {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	hash, ok, err := s.lookup(username)
	if err != nil || !ok {
		return false, err
	}

	match, err := cryptox.Verify(hash, password)
	if err != nil {
		return false, unavailable("stored hash for "+username, err)
	}
	return match, nil
}

func (s *FileStore) lookup(username string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unlock, err := lockFile(s.lockPath, false)
	if err != nil {
		return "", false, unavailable("lock credential store", err)
	}
	defer unlock()

	users, err := s.load()
	if err != nil {
		return "", false, err
	}
	hash, ok := users[username]
	return hash, ok, nil
}

// Close is a no-op: the document is not held open between operations.
func (s *FileStore) Close() error { return nil }

// load reads the whole document. A missing or empty file is an empty store.
func (s *FileStore) load() (map[string]string, error) {
	users := make(map[string]string)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return users, nil
	}
	if err != nil {
		return nil, unavailable("read credential store", err)
	}
	if len(data) == 0 {
		return users, nil
	}

	if err := json.Unmarshal(data, &users); err != nil {
		return nil, unavailable("decode credential store", err)
	}
	return users, nil
}

// persist rewrites the whole document atomically.
func (s *FileStore) persist(users map[string]string) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credential store: %w", err)
	}
	if err := filex.WriteFileAtomic(s.path, data, 0o600); err != nil {
		return unavailable("write credential store", err)
	}
	return nil
}

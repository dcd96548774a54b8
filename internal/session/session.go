// Package session holds the logged-in identity of one running CLI session and
// the authenticator that moves it between the LoggedOut and LoggedIn states.
package session

import (
	"sync"

	"github.com/UDAY704467/ai-career-guidance/internal/common"
)

// State is the authentication state of a Session.
type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	if s == LoggedIn {
		return "logged-in"
	}
	return "logged-out"
}

// Session is the identity of one running session. The zero value is
// logged out. It is owned by the caller and never persisted.
type Session struct {
	mu   sync.RWMutex
	user string
}

// New returns a logged-out session.
func New() *Session { return &Session{} }

// User returns the current username and whether someone is logged in.
func (s *Session) User() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.user != ""
}

// State reports LoggedIn or LoggedOut.
func (s *Session) State() State {
	if _, ok := s.User(); ok {
		return LoggedIn
	}
	return LoggedOut
}

// Require is the guard every protected operation calls first. It returns the
// current username or common.ErrNotAuthenticated.
func (s *Session) Require() (string, error) {
	if s == nil {
		return "", common.ErrNotAuthenticated
	}
	user, ok := s.User()
	if !ok {
		return "", common.ErrNotAuthenticated
	}
	return user, nil
}

func (s *Session) set(user string) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

package session

import (
	"context"
	"errors"

	"github.com/UDAY704467/ai-career-guidance/internal/common"
	"github.com/UDAY704467/ai-career-guidance/internal/credentials"
	"github.com/UDAY704467/ai-career-guidance/internal/logging"
)

// Authenticator runs sign-up and login against a credential store.
//
// Transitions:
//   - LoggedOut --Register--> LoggedOut (registration never logs in)
//   - any --Login ok--> LoggedIn(u)
//   - any --Login failed--> unchanged, common.ErrInvalidCredentials
//   - LoggedIn(u) --Logout--> LoggedOut
type Authenticator struct {
	store  credentials.Store
	logger logging.Logger
}

// NewAuthenticator builds an Authenticator. A nil logger discards output.
func NewAuthenticator(store credentials.Store, logger logging.Logger) *Authenticator {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Authenticator{store: store, logger: logger}
}

// Register creates a new account. The session state is not touched.
func (a *Authenticator) Register(ctx context.Context, username string, password []byte) error {
	if err := a.store.Register(ctx, username, password); err != nil {
		if errors.Is(err, common.ErrDuplicateUser) {
			a.logger.Info(ctx, "registration rejected: username taken", "user", username)
		} else {
			a.logger.Error(ctx, "registration failed", "user", username, "err", err)
		}
		return err
	}

	a.logger.Info(ctx, "user registered", "user", username)
	return nil
}

// Login verifies the credentials and, on success, sets s to LoggedIn(username).
// On failure s keeps whatever identity it had.
func (a *Authenticator) Login(ctx context.Context, s *Session, username string, password []byte) error {
	ok, err := a.store.Verify(ctx, username, password)
	if err != nil {
		a.logger.Error(ctx, "credential verification failed", "user", username, "err", err)
		return err
	}
	if !ok {
		a.logger.Warn(ctx, "failed login attempt", "user", username)
		return common.ErrInvalidCredentials
	}

	s.set(username)
	a.logger.Info(ctx, "user logged in", "user", username)
	return nil
}

// Logout clears the session identity. Logging out twice is harmless.
func (a *Authenticator) Logout(ctx context.Context, s *Session) {
	if user, ok := s.User(); ok {
		a.logger.Info(ctx, "user logged out", "user", user)
	}
	s.set("")
}

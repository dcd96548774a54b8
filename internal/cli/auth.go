package cli

import (
	"context"
	"fmt"

	"github.com/UDAY704467/ai-career-guidance/internal/common"
)

func (a *App) askCredentials(prompt string) (string, []byte, error) {
	username, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}
	return username, password, nil
}

// Register creates an account. It never logs the user in.
func (a *App) Register(ctx context.Context) error {
	username, password, err := a.askCredentials("Choose a username")
	if err != nil {
		return a.fail(err)
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, username, password); err != nil {
		return a.fail(err)
	}

	fmt.Fprintln(a.out, "Registered. You can now log in.")
	return nil
}

// Login authenticates and greets the user.
func (a *App) Login(ctx context.Context) error {
	username, password, err := a.askCredentials("Username")
	if err != nil {
		return a.fail(err)
	}
	defer common.WipeByteArray(password)

	previous, _ := a.session.User()
	if err := a.auth.Login(ctx, a.session, username, password); err != nil {
		return a.fail(err)
	}
	if previous != username {
		a.reset()
	}

	fmt.Fprintf(a.out, "Welcome, %s! Let's understand your career preferences.\n", username)
	return nil
}

// Logout ends the session and discards its answers.
func (a *App) Logout(ctx context.Context) error {
	if _, err := a.session.Require(); err != nil {
		return a.fail(err)
	}
	a.auth.Logout(ctx, a.session)
	a.reset()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

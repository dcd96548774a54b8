package cli

import (
	"errors"
	"fmt"

	"github.com/UDAY704467/ai-career-guidance/internal/common"
)

// userMessage turns an error into the line shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrNotAuthenticated):
		return "please log in first"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "invalid username or password"
	case errors.Is(err, common.ErrDuplicateUser):
		return "username already exists"
	case errors.Is(err, common.ErrInvalidInput):
		return "username and password must not be empty"
	default:
		return err.Error()
	}
}

func (a *App) fail(err error) error {
	fmt.Fprintln(a.out, "Error:", userMessage(err))
	return err
}

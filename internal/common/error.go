// Package common defines shared sentinel errors and small helpers used across
// the career guidance components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Credential store errors.
	ErrDuplicateUser      = errors.New("username already registered")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Session errors.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// Resume errors. Never fatal: the session degrades to empty evidence.
	ErrExtractionFailed = errors.New("resume text extraction failed")

	// Validation errors.
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidAnswer = errors.New("answer is not one of the declared options")
)

// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input errors.
	ErrInvalidSalary  = errors.New("invalid salary input")
	ErrNegativeSalary = errors.New("salary cannot be negative")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidOption  = errors.New("invalid option")
	ErrInputClosed    = errors.New("no input provided")

	// Batch errors.
	ErrInvalidRow = errors.New("invalid batch row")
	ErrEmptyBatch = errors.New("no rows to process")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage returns the console message carried by err, or err's own text
// when it does not wrap a UserError.
func UserMessage(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}

package services

import (
	"errors"
	"fmt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("Invalid user or password")
	ErrUnauthorized       = errors.New("Authentication Error")
	ErrForbidden          = errors.New("Forbidden")
	ErrTweetNotFound      = errors.New("tweet not found")
)

// ConflictError is returned when signing up with a taken username.
type ConflictError struct {
	Username string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Username)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrUserAlreadyExists
}

// NotFoundError is returned when no tweet has the requested id.
// The message echoes the id exactly as supplied.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Tweet not found: %s", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrTweetNotFound
}

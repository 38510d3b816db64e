package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrAnimeNotFound      = errors.New("anime not found")
	ErrAlreadyRated       = errors.New("you have already rated this anime")
	ErrGenreExists        = errors.New("genre already exists")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// validationError wraps ErrValidation with the detail shown to the client.
func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// LoginLimitedError carries how long a throttled client has to wait.
type LoginLimitedError struct {
	RetryAfter time.Duration
}

func (e *LoginLimitedError) Error() string {
	return ErrTooManyAttempts.Error()
}

func (e *LoginLimitedError) Unwrap() error {
	return ErrTooManyAttempts
}

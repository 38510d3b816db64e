package repository

import "errors"

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects the write.
	ErrDuplicate = errors.New("duplicate record")
	// ErrUnknownGenre is returned when a genre id referenced by a write does not exist.
	ErrUnknownGenre = errors.New("unknown genre")
)

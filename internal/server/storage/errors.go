package storage

import "errors"

// Common storage errors
var (
	// ErrEntityNotFound indicates that entity was not found in storage
	ErrEntityNotFound = errors.New("entity not found")

	// ErrVersionMismatch indicates that the expected version differs from the stored one
	ErrVersionMismatch = errors.New("entity version mismatch")

	// ErrTokenNotFound indicates that issued token was not found
	ErrTokenNotFound = errors.New("token not found")
)

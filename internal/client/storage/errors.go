package storage

import "errors"

// Common client storage errors
var (
	// ErrActionNotFound indicates that queued action was not found
	ErrActionNotFound = errors.New("queued action not found")

	// ErrActionExists indicates that action with the same ID is already queued
	ErrActionExists = errors.New("queued action already exists")

	// ErrCacheMiss indicates that cache entry is absent or expired
	ErrCacheMiss = errors.New("cache entry not found")

	// ErrMappingNotFound indicates that id mapping was not found
	ErrMappingNotFound = errors.New("id mapping not found")

	// ErrMappingExists indicates that local id is already mapped to another server id
	ErrMappingExists = errors.New("local id already mapped to a different server id")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrStoreLocked indicates that another process holds the store file
	ErrStoreLocked = errors.New("store is locked by another process")

	// ErrWrongPassphrase indicates that the store was sealed with a different passphrase
	ErrWrongPassphrase = errors.New("store passphrase does not match")
)

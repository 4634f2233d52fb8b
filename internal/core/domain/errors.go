package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists. Stores return it
	// for uniqueness violations so the ingest pipeline can swallow them
	// per record.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFetchExhausted indicates the fetcher gave up on a URL after
	// exhausting its retries. Fatal for that URL.
	ErrFetchExhausted = errors.New("fetch retries exhausted")

	// ErrUpdateTimeout indicates the update checker hit its wall-clock
	// timeout fetching an index page.
	ErrUpdateTimeout = errors.New("update check timed out")

	// ErrSearchUnavailable indicates the full-text index is not configured.
	ErrSearchUnavailable = errors.New("search engine unavailable")
)

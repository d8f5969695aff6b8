package models

import "errors"

// Error kinds surfaced by repositories and services. Callers match them
// with errors.Is and translate to transport-level responses. Only
// ErrTransientStorage is safe to retry; every other kind is terminal for
// the request.
var (
	// ErrNotFound: the operation referenced a nonexistent identifier.
	ErrNotFound = errors.New("not found")

	// ErrValidation: a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrConflict: duplicate unique key, or a concurrent mutation race.
	ErrConflict = errors.New("conflict")

	// ErrInvalidCredentials: authentication failed. Deliberately does not
	// distinguish unknown username from wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidArgument: a caller-supplied argument is out of range,
	// e.g. a non-positive page number.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTransientStorage: the storage collaborator failed with an I/O
	// error; the caller may retry.
	ErrTransientStorage = errors.New("transient storage failure")
)

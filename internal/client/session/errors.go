package session

import "errors"

var (
	// ErrNoSession means nothing usable is persisted: the user is signed out.
	ErrNoSession = errors.New("no session")

	// ErrCorruptSession marks a persisted record with one slot missing or a
	// user profile that does not decode. Read recovers from it by clearing
	// both slots and reporting ErrNoSession, so it never reaches callers.
	ErrCorruptSession = errors.New("corrupt session")

	// ErrStorage wraps failures of the underlying database.
	ErrStorage = errors.New("session storage failure")
)

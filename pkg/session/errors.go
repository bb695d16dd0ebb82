package session

import "errors"

var (
	// ErrNoRefreshToken indicates a refresh was requested with no stored refresh token
	ErrNoRefreshToken = errors.New("session.no_refresh_token")

	// ErrRefreshFailed indicates the backend rejected the refresh exchange
	ErrRefreshFailed = errors.New("session.refresh_failed")

	// ErrAlreadyStarted indicates Start was called twice on the same controller
	ErrAlreadyStarted = errors.New("session.already_started")

	// ErrNotStarted indicates an operation that needs a running controller
	ErrNotStarted = errors.New("session.not_started")

	// ErrInvalidTransition indicates a status change the transition table forbids
	ErrInvalidTransition = errors.New("session.invalid_transition")
)

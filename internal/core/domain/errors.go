package domain

import "errors"

var (
	// ErrInvalidCredentials covers bad login input and upstream rejections
	// of the identifier/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidUpstreamResponse is returned when a login response from the
	// RunPro API is missing the token or the user record.
	ErrInvalidUpstreamResponse = errors.New("invalid response from server")

	// ErrAccessDenied is returned when a valid account holds a role outside
	// the relevant policy.
	ErrAccessDenied = errors.New("access denied")

	// ErrLoginInFlight is returned when a login for the same identifier is
	// already outstanding.
	ErrLoginInFlight = errors.New("login already in progress")

	// ErrSessionNotFound is returned when a session ID resolves to nothing.
	ErrSessionNotFound = errors.New("session not found")

	// ErrUpstreamUnavailable normalizes every transport failure, non-2xx
	// response, and missing success indicator from the RunPro API. Feed
	// callers react to it by serving sample data, never by failing.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

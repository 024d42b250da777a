package auth

import "errors"

// Sentinel errors for the identity subsystem. Services and handlers branch on
// these with errors.Is; the HTTP boundary maps them to safe client responses.
var (
	// ErrDuplicateUsername is returned when registering an already taken username.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrUserNotFound is returned when the identity store has no such user.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when password verification fails.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoCredential is returned when a request carries no bearer token at all.
	// Distinct from ErrTokenInvalid so callers can tell unauthenticated access
	// from rejected access.
	ErrNoCredential = errors.New("no credential presented")

	// ErrTokenInvalid is returned for bad signatures, wrong issuer or audience,
	// and malformed tokens.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired is returned when the token is past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrForbidden is returned when a valid credential does not own the resource.
	ErrForbidden = errors.New("not the resource owner")

	// ErrTooManyAttempts is returned when the login throttle window is exhausted.
	ErrTooManyAttempts = errors.New("too many login attempts")
)

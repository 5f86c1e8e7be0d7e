package services

import "errors"

// Failure kinds surfaced to the HTTP layer. Handlers map these to status
// codes; anything unrecognized is logged and reported as a server error.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidToken       = errors.New("invalid reset token")
	ErrTokenExpired       = errors.New("reset token has expired")
	ErrTokenUsed          = errors.New("reset token has already been used")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrMailSend           = errors.New("could not send reset email")
)

// ValidationError marks bad client input so handlers can map it to a 400
// without inspecting individual messages.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

package errors

import "errors"

var (
	// ErrDuplicateEmail is returned when signing up with an email that is
	// already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned when login fails. Unknown email and
	// wrong password both map here so callers cannot probe which emails are
	// registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthenticated is returned when a request carries no resolvable
	// session.
	ErrUnauthenticated = errors.New("not authenticated")
)

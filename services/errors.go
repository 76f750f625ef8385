package services

import "errors"

type ErrorKind int

const (
	ValidationError ErrorKind = iota
	NotFoundError
	AuthorizationError
)

// Error is what every service operation returns on failure. Routes map the
// kind to an HTTP status (400/404/401); the message goes to the client as-is.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NewValidationError(message string) *Error {
	return &Error{Kind: ValidationError, Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: NotFoundError, Message: message}
}

func NewAuthorizationError(message string) *Error {
	return &Error{Kind: AuthorizationError, Message: message}
}

// IsKind reports whether err is a service Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

// Package error defines domain-specific errors for the music library.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register with an existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingFields is returned when a required field is empty or whitespace only.
	ErrMissingFields = errors.New("required field is missing")

	// ErrPasswordTooLong is returned when a password exceeds the hasher's input limit.
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrFieldTooLong is returned when a name or email exceeds its stored width.
	ErrFieldTooLong = errors.New("field is too long")
)

// Token validation errors. They never leave the identity filter as responses.
var (
	// ErrTokenMalformed is returned when a token cannot be decoded.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenBadSignature is returned when a token signature does not verify.
	ErrTokenBadSignature = errors.New("token signature is invalid")

	// ErrTokenExpired is returned when a token is past its expiry.
	ErrTokenExpired = errors.New("token has expired")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Registration errors (01XXXX)
	ErrCodeEmailExists     AuthErrorCode = "AUTH-010001"
	ErrCodeMissingFields   AuthErrorCode = "AUTH-010005"
	ErrCodePasswordTooLong AuthErrorCode = "AUTH-010006"
	ErrCodeFieldTooLong    AuthErrorCode = "AUTH-010007"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"

	// Token errors (03XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewInvalidCredentialsError returns the single error used for every failed login,
// whatever the reason.
func NewInvalidCredentialsError() *AuthError {
	return NewAuthError(ErrCodeInvalidCredentials, "invalid email or password", ErrInvalidCredentials)
}

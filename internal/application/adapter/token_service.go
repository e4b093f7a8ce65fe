// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// IssuedToken is a signed session token and its validity window.
type IssuedToken struct {
	Token     string
	KeyID     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenClaims represents the verified claims of a session token.
type TokenClaims struct {
	Subject   string
	KeyID     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for session token operations.
// Implementations must be safe for concurrent use without external locking.
type TokenService interface {
	// IssueToken signs a token for subject.
	IssueToken(subject string) (*IssuedToken, error)

	// ValidateToken verifies token and returns its claims. The error wraps one of
	// ErrTokenMalformed, ErrTokenBadSignature or ErrTokenExpired.
	ValidateToken(token string) (*TokenClaims, error)
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing and verification.
type PasswordService interface {
	// HashPassword hashes a plain text password with a salted, adaptive function.
	HashPassword(password string) (string, error)

	// VerifyPassword reports whether password matches hashedPassword.
	// A malformed digest never matches.
	VerifyPassword(hashedPassword, password string) bool
}

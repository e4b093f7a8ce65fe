// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Stored column widths of the user fields, in characters.
const (
	MaxNameLength  = 100
	MaxEmailLength = 255
)

// User represents an account of the music library.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	EmailKey     string
	PasswordHash string
	CreatedAt    time.Time
	JoinedAt     time.Time
}

// NewUser creates a new User registered at the given instant.
func NewUser(name, email, passwordHash string, now time.Time) *User {
	now = now.UTC()
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		EmailKey:     NormalizeEmail(email),
		PasswordHash: passwordHash,
		CreatedAt:    now,
		JoinedAt:     now.Truncate(24 * time.Hour),
	}
}

// NormalizeEmail returns the lookup key used for case-insensitive email uniqueness.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"AL@Example.com", "al@example.com"},
		{"  al@example.com ", "al@example.com"},
		{"al@example.com", "al@example.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeEmail(tt.input))
	}
}

func TestNewUser(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	user := NewUser("Al", "AL@Example.com", "digest", now)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "AL@Example.com", user.Email)
	assert.Equal(t, "al@example.com", user.EmailKey)
	assert.Equal(t, now, user.CreatedAt)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), user.JoinedAt)
}

func TestPlaylist_IsOwnedBy(t *testing.T) {
	owner := uuid.New()
	playlist := NewPlaylist(owner, "", time.Now())

	assert.True(t, playlist.IsOwnedBy(owner))
	assert.False(t, playlist.IsOwnedBy(uuid.New()))
	assert.Empty(t, playlist.Tracks)
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Playlist is a named set of tracks owned by exactly one user.
type Playlist struct {
	ID        uuid.UUID
	Name      string
	OwnerID   uuid.UUID
	CreatedAt time.Time
	Tracks    []*Track
}

// NewPlaylist creates an empty playlist owned by ownerID.
func NewPlaylist(ownerID uuid.UUID, name string, now time.Time) *Playlist {
	return &Playlist{
		ID:        uuid.New(),
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: now.UTC(),
		Tracks:    []*Track{},
	}
}

// IsOwnedBy reports whether userID owns the playlist.
func (p *Playlist) IsOwnedBy(userID uuid.UUID) bool {
	return p.OwnerID == userID
}

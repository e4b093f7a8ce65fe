package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/musicplayer/backend/internal/domain/entity"
)

// PlaylistRepository defines the interface for playlist persistence operations.
type PlaylistRepository interface {
	// Create creates a new playlist.
	Create(ctx context.Context, playlist *entity.Playlist) error

	// FindByID retrieves a playlist without its tracks, or ErrPlaylistNotFound.
	// Inside a transaction the row is locked for update where the store supports it.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error)

	// ListByOwner returns the playlists of a user with their tracks.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)

	// AddTrack inserts the membership; an existing membership is left untouched.
	AddTrack(ctx context.Context, playlistID, trackID uuid.UUID) error

	// DeleteByOwner removes every playlist of a user together with its track rows.
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

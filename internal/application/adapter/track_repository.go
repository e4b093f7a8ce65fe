package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/musicplayer/backend/internal/domain/entity"
)

// TrackRepository defines read access to the track catalog.
type TrackRepository interface {
	// FindByID retrieves a track, or ErrTrackNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Track, error)

	// List returns the whole catalog ordered by artist and title.
	List(ctx context.Context) ([]*entity.Track, error)
}

// CatalogWriter is used by catalog seeding only.
type CatalogWriter interface {
	// Upsert inserts tracks or updates them in place, matching on id.
	Upsert(ctx context.Context, tracks []*entity.Track) error

	// FindByTitleAndArtist retrieves a track by its natural key, or ErrTrackNotFound.
	FindByTitleAndArtist(ctx context.Context, title, artist string) (*entity.Track, error)
}

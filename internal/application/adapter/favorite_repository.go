package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/musicplayer/backend/internal/domain/entity"
)

// FavoriteRepository defines the user-track favorite set.
type FavoriteRepository interface {
	// Add inserts the membership; an existing membership is left untouched.
	Add(ctx context.Context, userID, trackID uuid.UUID) error

	// Remove deletes the membership if present.
	Remove(ctx context.Context, userID, trackID uuid.UUID) error

	// Contains reports whether the track is a favorite of the user.
	Contains(ctx context.Context, userID, trackID uuid.UUID) (bool, error)

	// ListTracks returns the favorited tracks of a user.
	ListTracks(ctx context.Context, userID uuid.UUID) ([]*entity.Track, error)

	// DeleteByUser removes every favorite of a user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

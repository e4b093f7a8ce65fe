package curation

import (
	"context"
	"fmt"

	"github.com/musicplayer/backend/internal/application/adapter"
)

// RemoveFavoriteUseCase handles removing a track from favorites.
type RemoveFavoriteUseCase struct {
	trackRepo    adapter.TrackRepository
	favoriteRepo adapter.FavoriteRepository
}

// NewRemoveFavoriteUseCase creates a new RemoveFavoriteUseCase instance.
func NewRemoveFavoriteUseCase(
	trackRepo adapter.TrackRepository,
	favoriteRepo adapter.FavoriteRepository,
) *RemoveFavoriteUseCase {
	return &RemoveFavoriteUseCase{
		trackRepo:    trackRepo,
		favoriteRepo: favoriteRepo,
	}
}

// Execute removes the track from the owner's favorites. Removing a track that
// is not a favorite succeeds without changes.
func (uc *RemoveFavoriteUseCase) Execute(ctx context.Context, input FavoriteInput) error {
	if err := ensureTrackExists(ctx, uc.trackRepo, input.TrackID); err != nil {
		return err
	}

	if err := uc.favoriteRepo.Remove(ctx, input.OwnerID, input.TrackID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// Package curation contains use cases for favorites and playlists.
package curation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/musicplayer/backend/internal/application/adapter"
	domainerror "github.com/musicplayer/backend/internal/domain/error"
)

// FavoriteInput identifies a track in the owner's favorites.
type FavoriteInput struct {
	OwnerID uuid.UUID
	TrackID uuid.UUID
}

// AddFavoriteUseCase handles adding a track to favorites.
type AddFavoriteUseCase struct {
	trackRepo    adapter.TrackRepository
	favoriteRepo adapter.FavoriteRepository
}

// NewAddFavoriteUseCase creates a new AddFavoriteUseCase instance.
func NewAddFavoriteUseCase(
	trackRepo adapter.TrackRepository,
	favoriteRepo adapter.FavoriteRepository,
) *AddFavoriteUseCase {
	return &AddFavoriteUseCase{
		trackRepo:    trackRepo,
		favoriteRepo: favoriteRepo,
	}
}

// Execute adds the track to the owner's favorites. Adding it twice is a no-op.
func (uc *AddFavoriteUseCase) Execute(ctx context.Context, input FavoriteInput) error {
	if err := ensureTrackExists(ctx, uc.trackRepo, input.TrackID); err != nil {
		return err
	}

	if err := uc.favoriteRepo.Add(ctx, input.OwnerID, input.TrackID); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func ensureTrackExists(ctx context.Context, trackRepo adapter.TrackRepository, trackID uuid.UUID) error {
	if _, err := trackRepo.FindByID(ctx, trackID); err != nil {
		if errors.Is(err, domainerror.ErrTrackNotFound) {
			return domainerror.NewTrackNotFoundError()
		}
		return fmt.Errorf("failed to find track: %w", err)
	}
	return nil
}

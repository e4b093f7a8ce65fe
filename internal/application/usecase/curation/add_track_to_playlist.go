package curation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/musicplayer/backend/internal/application/adapter"
	domainerror "github.com/musicplayer/backend/internal/domain/error"
)

// AddTrackToPlaylistInput represents the input for adding a track to a playlist.
type AddTrackToPlaylistInput struct {
	OwnerID    uuid.UUID
	PlaylistID uuid.UUID
	TrackID    uuid.UUID
}

// AddTrackToPlaylistUseCase handles adding a track to an owned playlist.
type AddTrackToPlaylistUseCase struct {
	txManager adapter.TransactionManager
}

// NewAddTrackToPlaylistUseCase creates a new AddTrackToPlaylistUseCase instance.
func NewAddTrackToPlaylistUseCase(txManager adapter.TransactionManager) *AddTrackToPlaylistUseCase {
	return &AddTrackToPlaylistUseCase{
		txManager: txManager,
	}
}

// Execute adds the track to the playlist. Ownership is checked before the track
// is looked up, so a non-owner learns nothing about the catalog.
func (uc *AddTrackToPlaylistUseCase) Execute(ctx context.Context, input AddTrackToPlaylistInput) error {
	return uc.txManager.Execute(ctx, func(repos adapter.Repositories) error {
		playlist, err := repos.Playlists().FindByID(ctx, input.PlaylistID)
		if err != nil {
			if errors.Is(err, domainerror.ErrPlaylistNotFound) {
				return domainerror.NewPlaylistNotFoundError()
			}
			return fmt.Errorf("failed to find playlist: %w", err)
		}

		if !playlist.IsOwnedBy(input.OwnerID) {
			return domainerror.NewCurationError(
				domainerror.ErrCodeNotPlaylistOwner,
				"only the playlist owner can add tracks",
				domainerror.ErrNotPlaylistOwner,
			)
		}

		if err := ensureTrackExists(ctx, repos.Tracks(), input.TrackID); err != nil {
			return err
		}

		if err := repos.Playlists().AddTrack(ctx, playlist.ID, input.TrackID); err != nil {
			return fmt.Errorf("failed to add track to playlist: %w", err)
		}
		return nil
	})
}

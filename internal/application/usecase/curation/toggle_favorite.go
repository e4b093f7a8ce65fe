package curation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/musicplayer/backend/internal/application/adapter"
	domainerror "github.com/musicplayer/backend/internal/domain/error"
)

// ToggleFavoriteOutput reports the favorite state after a toggle.
type ToggleFavoriteOutput struct {
	TrackID  uuid.UUID
	Favorite bool
}

// ToggleFavoriteUseCase flips the favorite state of a track.
type ToggleFavoriteUseCase struct {
	txManager adapter.TransactionManager
}

// NewToggleFavoriteUseCase creates a new ToggleFavoriteUseCase instance.
func NewToggleFavoriteUseCase(txManager adapter.TransactionManager) *ToggleFavoriteUseCase {
	return &ToggleFavoriteUseCase{
		txManager: txManager,
	}
}

// Execute adds the track when absent and removes it when present. The owner row
// is locked for the duration, so concurrent toggles by one user take turns.
func (uc *ToggleFavoriteUseCase) Execute(ctx context.Context, input FavoriteInput) (*ToggleFavoriteOutput, error) {
	var present bool

	err := uc.txManager.Execute(ctx, func(repos adapter.Repositories) error {
		if _, err := repos.Users().FindByID(ctx, input.OwnerID); err != nil {
			if errors.Is(err, domainerror.ErrUserNotFound) {
				return domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, "account no longer exists", err)
			}
			return fmt.Errorf("failed to lock owner: %w", err)
		}

		if err := ensureTrackExists(ctx, repos.Tracks(), input.TrackID); err != nil {
			return err
		}

		var err error
		present, err = repos.Favorites().Contains(ctx, input.OwnerID, input.TrackID)
		if err != nil {
			return fmt.Errorf("failed to read favorite: %w", err)
		}

		if present {
			if err := repos.Favorites().Remove(ctx, input.OwnerID, input.TrackID); err != nil {
				return fmt.Errorf("failed to remove favorite: %w", err)
			}
			return nil
		}
		if err := repos.Favorites().Add(ctx, input.OwnerID, input.TrackID); err != nil {
			return fmt.Errorf("failed to add favorite: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ToggleFavoriteOutput{
		TrackID:  input.TrackID,
		Favorite: !present,
	}, nil
}

package curation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/musicplayer/backend/internal/application/adapter"
	"github.com/musicplayer/backend/internal/domain/entity"
)

// ListFavoritesInput represents the input for listing favorites.
type ListFavoritesInput struct {
	OwnerID uuid.UUID
}

// ListFavoritesUseCase handles listing the owner's favorites.
type ListFavoritesUseCase struct {
	favoriteRepo adapter.FavoriteRepository
}

// NewListFavoritesUseCase creates a new ListFavoritesUseCase instance.
func NewListFavoritesUseCase(favoriteRepo adapter.FavoriteRepository) *ListFavoritesUseCase {
	return &ListFavoritesUseCase{
		favoriteRepo: favoriteRepo,
	}
}

// Execute returns the owner's favorite tracks.
func (uc *ListFavoritesUseCase) Execute(ctx context.Context, input ListFavoritesInput) ([]*entity.Track, error) {
	tracks, err := uc.favoriteRepo.ListTracks(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return tracks, nil
}

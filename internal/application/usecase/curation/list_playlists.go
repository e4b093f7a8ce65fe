package curation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/musicplayer/backend/internal/application/adapter"
	"github.com/musicplayer/backend/internal/domain/entity"
)

// ListPlaylistsInput represents the input for listing playlists.
type ListPlaylistsInput struct {
	OwnerID uuid.UUID
}

// ListPlaylistsUseCase handles listing the owner's playlists.
type ListPlaylistsUseCase struct {
	playlistRepo adapter.PlaylistRepository
}

// NewListPlaylistsUseCase creates a new ListPlaylistsUseCase instance.
func NewListPlaylistsUseCase(playlistRepo adapter.PlaylistRepository) *ListPlaylistsUseCase {
	return &ListPlaylistsUseCase{
		playlistRepo: playlistRepo,
	}
}

// Execute returns the owner's playlists with their tracks.
func (uc *ListPlaylistsUseCase) Execute(ctx context.Context, input ListPlaylistsInput) ([]*entity.Playlist, error) {
	playlists, err := uc.playlistRepo.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	return playlists, nil
}

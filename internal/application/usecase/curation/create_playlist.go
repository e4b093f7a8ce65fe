package curation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/musicplayer/backend/internal/application/adapter"
	"github.com/musicplayer/backend/internal/domain/entity"
)

// CreatePlaylistInput represents the input for playlist creation.
type CreatePlaylistInput struct {
	OwnerID uuid.UUID
	Name    string
}

// CreatePlaylistUseCase handles playlist creation logic.
type CreatePlaylistUseCase struct {
	playlistRepo adapter.PlaylistRepository
}

// NewCreatePlaylistUseCase creates a new CreatePlaylistUseCase instance.
func NewCreatePlaylistUseCase(playlistRepo adapter.PlaylistRepository) *CreatePlaylistUseCase {
	return &CreatePlaylistUseCase{
		playlistRepo: playlistRepo,
	}
}

// Execute creates an empty playlist owned by the caller. The name may be empty.
func (uc *CreatePlaylistUseCase) Execute(ctx context.Context, input CreatePlaylistInput) (*entity.Playlist, error) {
	playlist := entity.NewPlaylist(input.OwnerID, input.Name, time.Now().UTC())

	if err := uc.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}
	return playlist, nil
}

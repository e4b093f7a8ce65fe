package auth

import (
	"context"
	"fmt"

	"github.com/musicplayer/backend/internal/application/adapter"
	"github.com/musicplayer/backend/internal/domain/entity"
)

// GetProfileInput represents the input for reading a profile.
type GetProfileInput struct {
	User *entity.User
}

// GetProfileOutput represents a user together with their curated collections.
type GetProfileOutput struct {
	User      *entity.User
	Favorites []*entity.Track
	Playlists []*entity.Playlist
}

// GetProfileUseCase handles profile retrieval logic.
type GetProfileUseCase struct {
	favoriteRepo adapter.FavoriteRepository
	playlistRepo adapter.PlaylistRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(
	favoriteRepo adapter.FavoriteRepository,
	playlistRepo adapter.PlaylistRepository,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		favoriteRepo: favoriteRepo,
		playlistRepo: playlistRepo,
	}
}

// Execute loads the profile of the given user.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	favorites, err := uc.favoriteRepo.ListTracks(ctx, input.User.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	playlists, err := uc.playlistRepo.ListByOwner(ctx, input.User.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}

	return &GetProfileOutput{
		User:      input.User,
		Favorites: favorites,
		Playlists: playlists,
	}, nil
}

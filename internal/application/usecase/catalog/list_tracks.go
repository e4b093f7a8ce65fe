// Package catalog contains use cases for the shared track catalog.
package catalog

import (
	"context"
	"fmt"

	"github.com/musicplayer/backend/internal/application/adapter"
	"github.com/musicplayer/backend/internal/domain/entity"
)

// ListTracksUseCase handles listing the catalog.
type ListTracksUseCase struct {
	trackRepo adapter.TrackRepository
}

// NewListTracksUseCase creates a new ListTracksUseCase instance.
func NewListTracksUseCase(trackRepo adapter.TrackRepository) *ListTracksUseCase {
	return &ListTracksUseCase{
		trackRepo: trackRepo,
	}
}

// Execute returns every catalog track.
func (uc *ListTracksUseCase) Execute(ctx context.Context) ([]*entity.Track, error) {
	tracks, err := uc.trackRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}
	return tracks, nil
}

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/musicplayer/backend/internal/application/adapter"
	"github.com/musicplayer/backend/internal/domain/entity"
	domainerror "github.com/musicplayer/backend/internal/domain/error"
)

// SeedTrack is one entry of a catalog seed file.
type SeedTrack struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	URL    string `json:"url"`
	Cover  string `json:"cover"`
}

// SeedTracksInput represents the input for catalog seeding.
type SeedTracksInput struct {
	Path string
}

// SeedTracksOutput reports how many tracks were written.
type SeedTracksOutput struct {
	Upserted int
}

// SeedTracksUseCase loads catalog entries from a JSON file into the store.
type SeedTracksUseCase struct {
	catalog adapter.CatalogWriter
}

// NewSeedTracksUseCase creates a new SeedTracksUseCase instance.
func NewSeedTracksUseCase(catalog adapter.CatalogWriter) *SeedTracksUseCase {
	return &SeedTracksUseCase{
		catalog: catalog,
	}
}

// Execute upserts every entry of the seed file. Entries with an id are matched on
// it; entries without one are matched on title and artist.
func (uc *SeedTracksUseCase) Execute(ctx context.Context, input SeedTracksInput) (*SeedTracksOutput, error) {
	raw, err := os.ReadFile(input.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed file: %w", err)
	}

	var entries []SeedTrack
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, domainerror.NewCurationError(
			domainerror.ErrCodeInvalidCatalogEntry,
			"catalog seed file must be a JSON array of tracks",
			fmt.Errorf("%w: %v", domainerror.ErrInvalidCatalogEntry, err),
		)
	}

	tracks := make([]*entity.Track, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		track, err := uc.resolve(ctx, e)
		if err != nil {
			return nil, domainerror.NewCurationError(
				domainerror.ErrCodeInvalidCatalogEntry,
				fmt.Sprintf("catalog entry %d is invalid", i),
				err,
			)
		}

		naturalKey := track.Title + "\x00" + track.Artist
		if seen[naturalKey] {
			continue
		}
		seen[naturalKey] = true
		tracks = append(tracks, track)
	}

	if err := uc.catalog.Upsert(ctx, tracks); err != nil {
		return nil, fmt.Errorf("failed to upsert catalog: %w", err)
	}

	return &SeedTracksOutput{Upserted: len(tracks)}, nil
}

func (uc *SeedTracksUseCase) resolve(ctx context.Context, e SeedTrack) (*entity.Track, error) {
	track := &entity.Track{
		Title:  strings.TrimSpace(e.Title),
		Artist: strings.TrimSpace(e.Artist),
		URL:    strings.TrimSpace(e.URL),
		Cover:  strings.TrimSpace(e.Cover),
	}
	if track.Title == "" || track.URL == "" {
		return nil, fmt.Errorf("%w: title and url are required", domainerror.ErrInvalidCatalogEntry)
	}

	existing, err := uc.catalog.FindByTitleAndArtist(ctx, track.Title, track.Artist)
	if err != nil && !errors.Is(err, domainerror.ErrTrackNotFound) {
		return nil, fmt.Errorf("failed to look up track: %w", err)
	}

	if e.ID != "" {
		id, err := uuid.Parse(e.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: id %q is not a uuid", domainerror.ErrInvalidCatalogEntry, e.ID)
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: %q by %q already exists with id %s",
				domainerror.ErrInvalidCatalogEntry, track.Title, track.Artist, existing.ID)
		}
		track.ID = id
		return track, nil
	}

	if existing != nil {
		track.ID = existing.ID
	} else {
		track.ID = uuid.New()
	}
	return track, nil
}

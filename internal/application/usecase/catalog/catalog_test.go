package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicplayer/backend/config"
	domainerror "github.com/musicplayer/backend/internal/domain/error"
	"github.com/musicplayer/backend/internal/infra/db"
	"github.com/musicplayer/backend/internal/integration/persistence"
	"github.com/musicplayer/backend/internal/integration/persistence/model"
)

func newTrackStore(t *testing.T) persistence.TrackStore {
	t.Helper()

	database, err := db.NewConnection(&config.DatabaseConfig{
		Driver:          "sqlite",
		URL:             fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(model.AllModels()...))
	t.Cleanup(func() { _ = database.Close() })

	return persistence.NewTrackRepository(database.DB())
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracks.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSeedTracks_UpsertsByIDAndNaturalKey(t *testing.T) {
	store := newTrackStore(t)
	seed := NewSeedTracksUseCase(store)
	list := NewListTracksUseCase(store)
	ctx := context.Background()

	fixedID := uuid.New()
	first := writeSeed(t, fmt.Sprintf(`[
		{"id": %q, "title": "Fixed", "artist": "A", "url": "u1", "cover": "c1"},
		{"title": "Loose", "artist": "B", "url": "u2"},
		{"title": "Loose", "artist": "B", "url": "u2-duplicate"}
	]`, fixedID))

	out, err := seed.Execute(ctx, SeedTracksInput{Path: first})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Upserted)

	tracks, err := list.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	looseID := tracks[1].ID
	assert.Equal(t, fixedID, tracks[0].ID)

	second := writeSeed(t, fmt.Sprintf(`[
		{"id": %q, "title": "Fixed", "artist": "A", "url": "u1", "cover": "c1-new"},
		{"title": "Loose", "artist": "B", "url": "u2-new"}
	]`, fixedID))

	_, err = seed.Execute(ctx, SeedTracksInput{Path: second})
	require.NoError(t, err)

	tracks, err = list.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "c1-new", tracks[0].Cover)
	assert.Equal(t, looseID, tracks[1].ID)
	assert.Equal(t, "u2-new", tracks[1].URL)
}

func TestSeedTracks_InvalidEntries(t *testing.T) {
	store := newTrackStore(t)
	seed := NewSeedTracksUseCase(store)

	tests := []struct {
		name    string
		content string
	}{
		{"not an array", `{"title": "x"}`},
		{"missing title", `[{"artist": "A", "url": "u"}]`},
		{"missing url", `[{"title": "T", "artist": "A"}]`},
		{"bad id", `[{"id": "nope", "title": "T", "artist": "A", "url": "u"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seed.Execute(context.Background(), SeedTracksInput{Path: writeSeed(t, tt.content)})
			require.Error(t, err)

			var curationErr *domainerror.CurationError
			require.True(t, errors.As(err, &curationErr))
			assert.Equal(t, domainerror.ErrCodeInvalidCatalogEntry, curationErr.Code)
			assert.ErrorIs(t, err, domainerror.ErrInvalidCatalogEntry)
		})
	}
}

func TestSeedTracks_MissingFile(t *testing.T) {
	seed := NewSeedTracksUseCase(newTrackStore(t))

	_, err := seed.Execute(context.Background(), SeedTracksInput{Path: filepath.Join(t.TempDir(), "absent.json")})

	assert.ErrorIs(t, err, os.ErrNotExist)
}

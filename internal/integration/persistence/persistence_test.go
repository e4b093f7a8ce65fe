package persistence

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/musicplayer/backend/config"
	"github.com/musicplayer/backend/internal/application/adapter"
	"github.com/musicplayer/backend/internal/domain/entity"
	domainerror "github.com/musicplayer/backend/internal/domain/error"
	"github.com/musicplayer/backend/internal/infra/db"
	"github.com/musicplayer/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
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

	return database.DB()
}

func seedTrack(t *testing.T, gdb *gorm.DB, title, artist string) *entity.Track {
	t.Helper()
	track := &entity.Track{
		ID:     uuid.New(),
		Title:  title,
		Artist: artist,
		URL:    "https://cdn.example/" + title + ".mp3",
		Cover:  "https://cdn.example/" + title + ".jpg",
	}
	require.NoError(t, NewTrackRepository(gdb).Upsert(context.Background(), []*entity.Track{track}))
	return track
}

func seedUser(t *testing.T, gdb *gorm.DB, email string) *entity.User {
	t.Helper()
	user := entity.NewUser("Al", email, "digest", time.Now())
	require.NoError(t, NewUserRepository(gdb).Create(context.Background(), user))
	return user
}

func TestUserRepository_CaseInsensitiveEmail(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	user := seedUser(t, gdb, "AL@Example.com")

	found, err := repo.FindByEmail(ctx, "al@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "AL@Example.com", found.Email)
	assert.Equal(t, "al@example.com", found.EmailKey)

	exists, err := repo.ExistsByEmail(ctx, " Al@EXAMPLE.com ")
	require.NoError(t, err)
	assert.True(t, exists)

	duplicate := entity.NewUser("Other", "al@example.COM", "digest", time.Now())
	err = repo.Create(ctx, duplicate)
	assert.ErrorIs(t, err, domainerror.ErrEmailAlreadyExists)
}

func TestUserRepository_NotFound(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewUserRepository(gdb)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domainerror.ErrUserNotFound)

	err = repo.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrUserNotFound)
}

func TestTrackRepository_ListAndUpsert(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewTrackRepository(gdb)
	ctx := context.Background()

	b := seedTrack(t, gdb, "Song B", "Artist Z")
	a := seedTrack(t, gdb, "Song A", "Artist A")

	tracks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, a.ID, tracks[0].ID)
	assert.Equal(t, b.ID, tracks[1].ID)

	b.Cover = "https://cdn.example/new.jpg"
	require.NoError(t, repo.Upsert(ctx, []*entity.Track{b}))

	found, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/new.jpg", found.Cover)

	byKey, err := repo.FindByTitleAndArtist(ctx, "Song A", "Artist A")
	require.NoError(t, err)
	assert.Equal(t, a.ID, byKey.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrTrackNotFound)
}

func TestFavoriteRepository_IdempotentSet(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewFavoriteRepository(gdb)
	ctx := context.Background()

	user := seedUser(t, gdb, "al@example.com")
	track := seedTrack(t, gdb, "Song", "Artist")

	require.NoError(t, repo.Add(ctx, user.ID, track.ID))
	require.NoError(t, repo.Add(ctx, user.ID, track.ID))

	tracks, err := repo.ListTracks(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, track.ID, tracks[0].ID)

	contains, err := repo.Contains(ctx, user.ID, track.ID)
	require.NoError(t, err)
	assert.True(t, contains)

	require.NoError(t, repo.Remove(ctx, user.ID, track.ID))
	require.NoError(t, repo.Remove(ctx, user.ID, track.ID))

	tracks, err = repo.ListTracks(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, tracks)
}

func TestFavoriteRepository_ConcurrentAddsConverge(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewFavoriteRepository(gdb)
	ctx := context.Background()

	user := seedUser(t, gdb, "al@example.com")
	track := seedTrack(t, gdb, "Song", "Artist")

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Add(ctx, user.ID, track.ID)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, gdb.Model(&model.FavoriteModel{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPlaylistRepository_TracksAndOwnerScope(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewPlaylistRepository(gdb)
	ctx := context.Background()

	owner := seedUser(t, gdb, "owner@example.com")
	other := seedUser(t, gdb, "other@example.com")
	track := seedTrack(t, gdb, "Song", "Artist")

	playlist := entity.NewPlaylist(owner.ID, "Road trip", time.Now())
	require.NoError(t, repo.Create(ctx, playlist))
	require.NoError(t, repo.Create(ctx, entity.NewPlaylist(other.ID, "", time.Now())))

	require.NoError(t, repo.AddTrack(ctx, playlist.ID, track.ID))
	require.NoError(t, repo.AddTrack(ctx, playlist.ID, track.ID))

	found, err := repo.FindByID(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, found.OwnerID)
	assert.Empty(t, found.Tracks)

	playlists, err := repo.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, playlists, 1)
	assert.Equal(t, "Road trip", playlists[0].Name)
	require.Len(t, playlists[0].Tracks, 1)
	assert.Equal(t, track.ID, playlists[0].Tracks[0].ID)
	assert.Equal(t, "Artist", playlists[0].Tracks[0].Artist)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerror.ErrPlaylistNotFound)
}

func TestPlaylistRepository_DeleteByOwner(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewPlaylistRepository(gdb)
	ctx := context.Background()

	owner := seedUser(t, gdb, "owner@example.com")
	other := seedUser(t, gdb, "other@example.com")
	track := seedTrack(t, gdb, "Song", "Artist")

	mine := entity.NewPlaylist(owner.ID, "mine", time.Now())
	theirs := entity.NewPlaylist(other.ID, "theirs", time.Now())
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, theirs))
	require.NoError(t, repo.AddTrack(ctx, mine.ID, track.ID))
	require.NoError(t, repo.AddTrack(ctx, theirs.ID, track.ID))

	require.NoError(t, repo.DeleteByOwner(ctx, owner.ID))

	_, err := repo.FindByID(ctx, mine.ID)
	assert.ErrorIs(t, err, domainerror.ErrPlaylistNotFound)

	remaining, err := repo.ListByOwner(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Len(t, remaining[0].Tracks, 1)

	var rows int64
	require.NoError(t, gdb.Model(&model.PlaylistTrackModel{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	_, err = NewTrackRepository(gdb).FindByID(ctx, track.ID)
	assert.NoError(t, err)
}

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	gdb := newTestDB(t)
	tm := NewTransactionManager(gdb)
	ctx := context.Background()

	committed := entity.NewUser("A", "a@example.com", "digest", time.Now())
	err := tm.Execute(ctx, func(repos adapter.Repositories) error {
		return repos.Users().Create(ctx, committed)
	})
	require.NoError(t, err)

	rolledBack := entity.NewUser("B", "b@example.com", "digest", time.Now())
	sentinel := fmt.Errorf("abort")
	err = tm.Execute(ctx, func(repos adapter.Repositories) error {
		if err := repos.Users().Create(ctx, rolledBack); err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	users := NewUserRepository(gdb)
	_, err = users.FindByID(ctx, committed.ID)
	assert.NoError(t, err)
	_, err = users.FindByID(ctx, rolledBack.ID)
	assert.ErrorIs(t, err, domainerror.ErrUserNotFound)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	gdb := newTestDB(t)
	tm := NewTransactionManager(gdb)
	ctx := context.Background()

	user := entity.NewUser("A", "a@example.com", "digest", time.Now())
	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(repos adapter.Repositories) error {
			_ = repos.Users().Create(ctx, user)
			panic("boom")
		})
	})

	_, err := NewUserRepository(gdb).FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, domainerror.ErrUserNotFound)
}

func TestTransactionManager_LockedPlaylistLookup(t *testing.T) {
	gdb := newTestDB(t)
	tm := NewTransactionManager(gdb)
	ctx := context.Background()

	owner := seedUser(t, gdb, "owner@example.com")
	track := seedTrack(t, gdb, "Song", "Artist")
	playlist := entity.NewPlaylist(owner.ID, "mine", time.Now())
	require.NoError(t, NewPlaylistRepository(gdb).Create(ctx, playlist))

	err := tm.Execute(ctx, func(repos adapter.Repositories) error {
		found, err := repos.Playlists().FindByID(ctx, playlist.ID)
		if err != nil {
			return err
		}
		if _, err := repos.Tracks().FindByID(ctx, track.ID); err != nil {
			return err
		}
		return repos.Playlists().AddTrack(ctx, found.ID, track.ID)
	})
	require.NoError(t, err)

	playlists, err := NewPlaylistRepository(gdb).ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, playlists, 1)
	assert.Len(t, playlists[0].Tracks, 1)
}

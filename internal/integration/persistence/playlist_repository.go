package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/musicplayer/backend/internal/application/adapter"
	"github.com/musicplayer/backend/internal/domain/entity"
	domainerror "github.com/musicplayer/backend/internal/domain/error"
	"github.com/musicplayer/backend/internal/integration/persistence/model"
)

// playlistRepository implements the adapter.PlaylistRepository interface.
type playlistRepository struct {
	db *gorm.DB
	// lockRows is set for repositories bound to a transaction.
	lockRows bool
}

// playlistTrackRow is a track joined with the playlist it belongs to.
type playlistTrackRow struct {
	model.TrackModel `gorm:"embedded"`
	PlaylistID       uuid.UUID
}

// NewPlaylistRepository creates a new playlist repository instance.
func NewPlaylistRepository(db *gorm.DB) adapter.PlaylistRepository {
	return &playlistRepository{
		db: db,
	}
}

// Create creates a new playlist in the database.
func (r *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	return r.db.WithContext(ctx).Create(model.PlaylistFromEntity(playlist)).Error
}

// FindByID retrieves a playlist by its ID without loading its tracks.
func (r *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	query := r.db.WithContext(ctx)
	if r.lockRows {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var playlistModel model.PlaylistModel
	result := query.Where("id = ?", id).First(&playlistModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPlaylistNotFound
		}
		return nil, result.Error
	}
	return playlistModel.ToEntity(), nil
}

// ListByOwner returns the user's playlists, oldest first, with their tracks.
func (r *playlistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	var models []model.PlaylistModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(models) == 0 {
		return []*entity.Playlist{}, nil
	}

	playlists := make([]*entity.Playlist, len(models))
	byID := make(map[uuid.UUID]*entity.Playlist, len(models))
	ids := make([]uuid.UUID, len(models))
	for i := range models {
		playlists[i] = models[i].ToEntity()
		byID[models[i].ID] = playlists[i]
		ids[i] = models[i].ID
	}

	var rows []playlistTrackRow
	result = r.db.WithContext(ctx).
		Table("playlist_tracks").
		Select("tracks.id, tracks.title, tracks.artist, tracks.url, tracks.cover, playlist_tracks.playlist_id").
		Joins("JOIN tracks ON tracks.id = playlist_tracks.track_id").
		Where("playlist_tracks.playlist_id IN ?", ids).
		Order("playlist_tracks.added_at ASC, tracks.title ASC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range rows {
		if playlist, ok := byID[rows[i].PlaylistID]; ok {
			playlist.Tracks = append(playlist.Tracks, rows[i].TrackModel.ToEntity())
		}
	}

	return playlists, nil
}

// AddTrack adds a track to a playlist. Adding an existing member is a no-op.
func (r *playlistRepository) AddTrack(ctx context.Context, playlistID, trackID uuid.UUID) error {
	membership := &model.PlaylistTrackModel{
		PlaylistID: playlistID,
		TrackID:    trackID,
		AddedAt:    time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(membership).Error
}

// DeleteByOwner removes the user's playlists and their track memberships.
func (r *playlistRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	owned := r.db.WithContext(ctx).Model(&model.PlaylistModel{}).Select("id").Where("owner_id = ?", ownerID)

	if err := r.db.WithContext(ctx).
		Where("playlist_id IN (?)", owned).
		Delete(&model.PlaylistTrackModel{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.PlaylistModel{}).Error
}

package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/musicplayer/backend/internal/application/adapter"
	"github.com/musicplayer/backend/internal/domain/entity"
	domainerror "github.com/musicplayer/backend/internal/domain/error"
	"github.com/musicplayer/backend/internal/integration/persistence/model"
)

// trackRepository implements adapter.TrackRepository and adapter.CatalogWriter.
type trackRepository struct {
	db *gorm.DB
}

// TrackStore is the full catalog store used by the composition root.
type TrackStore interface {
	adapter.TrackRepository
	adapter.CatalogWriter
}

// NewTrackRepository creates a new track repository instance.
func NewTrackRepository(db *gorm.DB) TrackStore {
	return &trackRepository{
		db: db,
	}
}

// FindByID retrieves a track by its ID.
func (r *trackRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Track, error) {
	var trackModel model.TrackModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&trackModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTrackNotFound
		}
		return nil, result.Error
	}
	return trackModel.ToEntity(), nil
}

// List returns every catalog track ordered by artist and title.
func (r *trackRepository) List(ctx context.Context) ([]*entity.Track, error) {
	var models []model.TrackModel
	result := r.db.WithContext(ctx).Order("artist ASC, title ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return model.TracksToEntities(models), nil
}

// FindByTitleAndArtist retrieves a track by its natural key.
func (r *trackRepository) FindByTitleAndArtist(ctx context.Context, title, artist string) (*entity.Track, error) {
	var trackModel model.TrackModel
	result := r.db.WithContext(ctx).
		Where("title = ? AND artist = ?", title, artist).
		First(&trackModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTrackNotFound
		}
		return nil, result.Error
	}
	return trackModel.ToEntity(), nil
}

// Upsert inserts the given tracks, updating existing rows that share an id.
func (r *trackRepository) Upsert(ctx context.Context, tracks []*entity.Track) error {
	if len(tracks) == 0 {
		return nil
	}

	models := make([]*model.TrackModel, len(tracks))
	for i, track := range tracks {
		models[i] = model.TrackFromEntity(track)
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "artist", "url", "cover"}),
		}).
		Create(&models).Error
}

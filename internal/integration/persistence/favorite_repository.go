package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/musicplayer/backend/internal/application/adapter"
	"github.com/musicplayer/backend/internal/domain/entity"
	"github.com/musicplayer/backend/internal/integration/persistence/model"
)

// favoriteRepository implements the adapter.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository instance.
func NewFavoriteRepository(db *gorm.DB) adapter.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// Add marks a track as a favorite of the user. Adding an existing favorite is a no-op.
func (r *favoriteRepository) Add(ctx context.Context, userID, trackID uuid.UUID) error {
	favorite := &model.FavoriteModel{
		UserID:    userID,
		TrackID:   trackID,
		CreatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favorite).Error
}

// Remove deletes the favorite if present.
func (r *favoriteRepository) Remove(ctx context.Context, userID, trackID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND track_id = ?", userID, trackID).
		Delete(&model.FavoriteModel{}).Error
}

// Contains reports whether the track is a favorite of the user.
func (r *favoriteRepository) Contains(ctx context.Context, userID, trackID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.FavoriteModel{}).
		Where("user_id = ? AND track_id = ?", userID, trackID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// ListTracks returns the user's favorite tracks in the order they were added.
func (r *favoriteRepository) ListTracks(ctx context.Context, userID uuid.UUID) ([]*entity.Track, error) {
	var models []model.TrackModel
	result := r.db.WithContext(ctx).
		Model(&model.TrackModel{}).
		Joins("JOIN user_favorites ON user_favorites.track_id = tracks.id").
		Where("user_favorites.user_id = ?", userID).
		Order("user_favorites.created_at ASC, tracks.title ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}
	return model.TracksToEntities(models), nil
}

// DeleteByUser removes every favorite of the user.
func (r *favoriteRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.FavoriteModel{}).Error
}

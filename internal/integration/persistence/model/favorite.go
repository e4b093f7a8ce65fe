package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel represents the user_favorites join table.
// The composite primary key makes each membership unique.
type FavoriteModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the FavoriteModel.
func (FavoriteModel) TableName() string {
	return "user_favorites"
}

// AllModels returns every model managed by auto-migration.
func AllModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&TrackModel{},
		&PlaylistModel{},
		&PlaylistTrackModel{},
		&FavoriteModel{},
	}
}

package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/musicplayer/backend/internal/domain/entity"
)

// PlaylistModel represents the playlists table in the database.
type PlaylistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;default:''"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the PlaylistModel.
func (PlaylistModel) TableName() string {
	return "playlists"
}

// ToEntity converts a PlaylistModel to a domain Playlist entity without tracks.
func (m *PlaylistModel) ToEntity() *entity.Playlist {
	return &entity.Playlist{
		ID:        m.ID,
		Name:      m.Name,
		OwnerID:   m.OwnerID,
		CreatedAt: m.CreatedAt,
		Tracks:    []*entity.Track{},
	}
}

// PlaylistFromEntity creates a PlaylistModel from a domain Playlist entity.
func PlaylistFromEntity(playlist *entity.Playlist) *PlaylistModel {
	return &PlaylistModel{
		ID:        playlist.ID,
		Name:      playlist.Name,
		OwnerID:   playlist.OwnerID,
		CreatedAt: playlist.CreatedAt,
	}
}

// PlaylistTrackModel represents the playlist_tracks join table.
// The composite primary key makes each membership unique.
type PlaylistTrackModel struct {
	PlaylistID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	AddedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the PlaylistTrackModel.
func (PlaylistTrackModel) TableName() string {
	return "playlist_tracks"
}

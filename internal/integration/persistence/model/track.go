package model

import (
	"github.com/google/uuid"

	"github.com/musicplayer/backend/internal/domain/entity"
)

// TrackModel represents the tracks table in the database.
type TrackModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_tracks_title_artist"`
	Artist string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_tracks_title_artist"`
	URL    string    `gorm:"type:varchar(1024);not null"`
	Cover  string    `gorm:"type:varchar(1024)"`
}

// TableName returns the table name for the TrackModel.
func (TrackModel) TableName() string {
	return "tracks"
}

// ToEntity converts a TrackModel to a domain Track entity.
func (m *TrackModel) ToEntity() *entity.Track {
	return &entity.Track{
		ID:     m.ID,
		Title:  m.Title,
		Artist: m.Artist,
		URL:    m.URL,
		Cover:  m.Cover,
	}
}

// TrackFromEntity creates a TrackModel from a domain Track entity.
func TrackFromEntity(track *entity.Track) *TrackModel {
	return &TrackModel{
		ID:     track.ID,
		Title:  track.Title,
		Artist: track.Artist,
		URL:    track.URL,
		Cover:  track.Cover,
	}
}

// TracksToEntities converts a slice of TrackModels to domain entities.
func TracksToEntities(models []TrackModel) []*entity.Track {
	tracks := make([]*entity.Track, len(models))
	for i := range models {
		tracks[i] = models[i].ToEntity()
	}
	return tracks
}

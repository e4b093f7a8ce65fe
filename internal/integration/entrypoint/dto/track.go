package dto

import "github.com/musicplayer/backend/internal/domain/entity"

// TrackResponse represents a catalog track in API responses.
type TrackResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Cover  string `json:"cover"`
	URL    string `json:"url"`
}

// ToTrackResponse converts a domain Track entity to a TrackResponse DTO.
func ToTrackResponse(track *entity.Track) TrackResponse {
	return TrackResponse{
		ID:     track.ID.String(),
		Title:  track.Title,
		Artist: track.Artist,
		Cover:  track.Cover,
		URL:    track.URL,
	}
}

// ToTrackResponses converts tracks to DTOs. The result is never nil.
func ToTrackResponses(tracks []*entity.Track) []TrackResponse {
	responses := make([]TrackResponse, len(tracks))
	for i, track := range tracks {
		responses[i] = ToTrackResponse(track)
	}
	return responses
}

package dto

import "github.com/musicplayer/backend/internal/domain/entity"

// CreatePlaylistRequest represents the request body for playlist creation.
type CreatePlaylistRequest struct {
	Name string `json:"name"`
}

// AddTrackRequest represents the request body naming a track.
type AddTrackRequest struct {
	TrackID string `json:"trackId"`
}

// PlaylistResponse represents a playlist in API responses.
type PlaylistResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Tracks []TrackResponse `json:"tracks"`
}

// ToPlaylistResponse converts a domain Playlist entity to a PlaylistResponse DTO.
func ToPlaylistResponse(playlist *entity.Playlist) PlaylistResponse {
	return PlaylistResponse{
		ID:     playlist.ID.String(),
		Name:   playlist.Name,
		Tracks: ToTrackResponses(playlist.Tracks),
	}
}

// ToPlaylistResponses converts playlists to DTOs. The result is never nil.
func ToPlaylistResponses(playlists []*entity.Playlist) []PlaylistResponse {
	responses := make([]PlaylistResponse, len(playlists))
	for i, playlist := range playlists {
		responses[i] = ToPlaylistResponse(playlist)
	}
	return responses
}

package dto

import (
	"github.com/musicplayer/backend/internal/application/usecase/auth"
)

// DateLayout is the format of calendar dates in API responses.
const DateLayout = "2006-01-02"

// ProfileResponse represents the authenticated user's profile.
type ProfileResponse struct {
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	JoinedAt  string             `json:"joinedAt"`
	Favorites []TrackResponse    `json:"favorites"`
	Playlists []PlaylistResponse `json:"playlists"`
}

// ToggleFavoriteResponse reports the favorite state after a toggle.
type ToggleFavoriteResponse struct {
	TrackID  string `json:"trackId"`
	Favorite bool   `json:"favorite"`
}

// DeleteAccountRequest represents the request body for account deletion.
type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// ToProfileResponse converts a profile use case output to a ProfileResponse DTO.
func ToProfileResponse(output *auth.GetProfileOutput) ProfileResponse {
	return ProfileResponse{
		Name:      output.User.Name,
		Email:     output.User.Email,
		JoinedAt:  output.User.JoinedAt.Format(DateLayout),
		Favorites: ToTrackResponses(output.Favorites),
		Playlists: ToPlaylistResponses(output.Playlists),
	}
}

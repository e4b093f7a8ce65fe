package controller

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/musicplayer/backend/internal/application/usecase/auth"
	"github.com/musicplayer/backend/internal/application/usecase/curation"
	"github.com/musicplayer/backend/internal/integration/entrypoint/dto"
)

// PlaylistController handles playlist endpoints.
type PlaylistController struct {
	ownerResolver
	listPlaylistsUseCase      *curation.ListPlaylistsUseCase
	createPlaylistUseCase     *curation.CreatePlaylistUseCase
	addTrackToPlaylistUseCase *curation.AddTrackToPlaylistUseCase
}

// NewPlaylistController creates a new playlist controller instance.
func NewPlaylistController(
	resolveOwnerUseCase *auth.ResolveOwnerUseCase,
	listPlaylistsUseCase *curation.ListPlaylistsUseCase,
	createPlaylistUseCase *curation.CreatePlaylistUseCase,
	addTrackToPlaylistUseCase *curation.AddTrackToPlaylistUseCase,
) *PlaylistController {
	return &PlaylistController{
		ownerResolver:             ownerResolver{resolveOwnerUseCase: resolveOwnerUseCase},
		listPlaylistsUseCase:      listPlaylistsUseCase,
		createPlaylistUseCase:     createPlaylistUseCase,
		addTrackToPlaylistUseCase: addTrackToPlaylistUseCase,
	}
}

// List handles GET /api/playlists requests.
func (c *PlaylistController) List(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	playlists, err := c.listPlaylistsUseCase.Execute(ctx.Request.Context(), curation.ListPlaylistsInput{
		OwnerID: user.ID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlaylistResponses(playlists))
}

// Create handles POST /api/playlists requests. A missing body creates an unnamed playlist.
func (c *PlaylistController) Create(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreatePlaylistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		handleError(ctx, invalidRequest("Invalid request body"))
		return
	}

	playlist, err := c.createPlaylistUseCase.Execute(ctx.Request.Context(), curation.CreatePlaylistInput{
		OwnerID: user.ID,
		Name:    req.Name,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPlaylistResponse(playlist))
}

// AddTrack handles POST /api/playlists/:playlistId/tracks requests.
func (c *PlaylistController) AddTrack(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	playlistID, err := parsePlaylistID(ctx.Param("playlistId"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	var req dto.AddTrackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.TrackID) == "" {
		handleError(ctx, invalidRequest("trackId is required"))
		return
	}

	// A malformed id names no track. It still goes through the owner check,
	// which must see every request first.
	trackID, err := uuid.Parse(req.TrackID)
	if err != nil {
		trackID = uuid.Nil
	}

	err = c.addTrackToPlaylistUseCase.Execute(ctx.Request.Context(), curation.AddTrackToPlaylistInput{
		OwnerID:    user.ID,
		PlaylistID: playlistID,
		TrackID:    trackID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Track added to playlist",
	})
}

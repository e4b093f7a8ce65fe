package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/musicplayer/backend/internal/application/usecase/catalog"
	"github.com/musicplayer/backend/internal/integration/entrypoint/dto"
)

// TrackController handles catalog endpoints.
type TrackController struct {
	listTracksUseCase *catalog.ListTracksUseCase
}

// NewTrackController creates a new track controller instance.
func NewTrackController(listTracksUseCase *catalog.ListTracksUseCase) *TrackController {
	return &TrackController{
		listTracksUseCase: listTracksUseCase,
	}
}

// List handles GET /api/tracks requests.
func (c *TrackController) List(ctx *gin.Context) {
	tracks, err := c.listTracksUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrackResponses(tracks))
}

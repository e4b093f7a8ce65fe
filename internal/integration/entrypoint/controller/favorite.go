package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/musicplayer/backend/internal/application/usecase/auth"
	"github.com/musicplayer/backend/internal/application/usecase/curation"
	"github.com/musicplayer/backend/internal/integration/entrypoint/dto"
)

// FavoriteController handles favorites endpoints.
type FavoriteController struct {
	ownerResolver
	listFavoritesUseCase  *curation.ListFavoritesUseCase
	addFavoriteUseCase    *curation.AddFavoriteUseCase
	removeFavoriteUseCase *curation.RemoveFavoriteUseCase
}

// NewFavoriteController creates a new favorite controller instance.
func NewFavoriteController(
	resolveOwnerUseCase *auth.ResolveOwnerUseCase,
	listFavoritesUseCase *curation.ListFavoritesUseCase,
	addFavoriteUseCase *curation.AddFavoriteUseCase,
	removeFavoriteUseCase *curation.RemoveFavoriteUseCase,
) *FavoriteController {
	return &FavoriteController{
		ownerResolver:         ownerResolver{resolveOwnerUseCase: resolveOwnerUseCase},
		listFavoritesUseCase:  listFavoritesUseCase,
		addFavoriteUseCase:    addFavoriteUseCase,
		removeFavoriteUseCase: removeFavoriteUseCase,
	}
}

// List handles GET /api/favorites requests.
func (c *FavoriteController) List(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	tracks, err := c.listFavoritesUseCase.Execute(ctx.Request.Context(), curation.ListFavoritesInput{
		OwnerID: user.ID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrackResponses(tracks))
}

// Add handles POST /api/favorites/:trackId requests.
func (c *FavoriteController) Add(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	trackID, err := parseTrackID(ctx.Param("trackId"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	err = c.addFavoriteUseCase.Execute(ctx.Request.Context(), curation.FavoriteInput{
		OwnerID: user.ID,
		TrackID: trackID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Track added to favorites",
	})
}

// Remove handles DELETE /api/favorites/:trackId requests.
func (c *FavoriteController) Remove(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	trackID, err := parseTrackID(ctx.Param("trackId"))
	if err != nil {
		handleError(ctx, err)
		return
	}

	err = c.removeFavoriteUseCase.Execute(ctx.Request.Context(), curation.FavoriteInput{
		OwnerID: user.ID,
		TrackID: trackID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Track removed from favorites",
	})
}

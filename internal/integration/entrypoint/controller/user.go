package controller

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/musicplayer/backend/internal/application/usecase/auth"
	"github.com/musicplayer/backend/internal/application/usecase/curation"
	"github.com/musicplayer/backend/internal/integration/entrypoint/dto"
)

// UserController handles endpoints about the authenticated user.
type UserController struct {
	ownerResolver
	getProfileUseCase     *auth.GetProfileUseCase
	deleteAccountUseCase  *auth.DeleteAccountUseCase
	toggleFavoriteUseCase *curation.ToggleFavoriteUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	resolveOwnerUseCase *auth.ResolveOwnerUseCase,
	getProfileUseCase *auth.GetProfileUseCase,
	deleteAccountUseCase *auth.DeleteAccountUseCase,
	toggleFavoriteUseCase *curation.ToggleFavoriteUseCase,
) *UserController {
	return &UserController{
		ownerResolver:         ownerResolver{resolveOwnerUseCase: resolveOwnerUseCase},
		getProfileUseCase:     getProfileUseCase,
		deleteAccountUseCase:  deleteAccountUseCase,
		toggleFavoriteUseCase: toggleFavoriteUseCase,
	}
}

// GetProfile handles GET /api/user/profile requests.
func (c *UserController) GetProfile(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), auth.GetProfileInput{User: user})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output))
}

// DeleteAccount handles DELETE /api/user/me requests.
func (c *UserController) DeleteAccount(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	var req dto.DeleteAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		handleError(ctx, invalidRequest("Invalid request body"))
		return
	}

	err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), auth.DeleteAccountInput{
		User:     user,
		Password: req.Password,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ToggleFavorite handles POST /api/user/favorites requests.
func (c *UserController) ToggleFavorite(ctx *gin.Context) {
	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	var req dto.AddTrackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.TrackID) == "" {
		handleError(ctx, invalidRequest("trackId is required"))
		return
	}

	trackID, err := parseTrackID(req.TrackID)
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.toggleFavoriteUseCase.Execute(ctx.Request.Context(), curation.FavoriteInput{
		OwnerID: user.ID,
		TrackID: trackID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToggleFavoriteResponse{
		TrackID:  output.TrackID.String(),
		Favorite: output.Favorite,
	})
}

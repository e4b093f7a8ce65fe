// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/musicplayer/backend/internal/application/usecase/auth"
	"github.com/musicplayer/backend/internal/domain/entity"
	domainerror "github.com/musicplayer/backend/internal/domain/error"
	"github.com/musicplayer/backend/internal/integration/entrypoint/dto"
	"github.com/musicplayer/backend/internal/integration/entrypoint/middleware"
)

// handleError writes the HTTP response for a use case error.
func handleError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(getStatusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	var curationErr *domainerror.CurationError
	if errors.As(err, &curationErr) {
		ctx.JSON(getStatusCodeForCurationError(curationErr.Code), dto.ErrorResponse{
			Error: curationErr.Message,
			Code:  string(curationErr.Code),
		})
		return
	}

	slog.ErrorContext(ctx.Request.Context(), "Request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeMissingFields,
		domainerror.ErrCodePasswordTooLong,
		domainerror.ErrCodeFieldTooLong:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForCurationError maps curation error codes to HTTP status codes.
func getStatusCodeForCurationError(code domainerror.CurationErrorCode) int {
	switch code {
	case domainerror.ErrCodeTrackNotFound,
		domainerror.ErrCodePlaylistNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotPlaylistOwner:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidCuration,
		domainerror.ErrCodeInvalidCatalogEntry:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func invalidRequest(message string) error {
	return domainerror.NewCurationError(domainerror.ErrCodeInvalidCuration, message, nil)
}

// parseTrackID parses a track id. Malformed ids name no track.
func parseTrackID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerror.NewTrackNotFoundError()
	}
	return id, nil
}

// parsePlaylistID parses a playlist id. Malformed ids name no playlist.
func parsePlaylistID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerror.NewPlaylistNotFoundError()
	}
	return id, nil
}

// ownerResolver turns the identity bound by the identity filter into a user.
type ownerResolver struct {
	resolveOwnerUseCase *auth.ResolveOwnerUseCase
}

// currentUser returns the caller, writing the error response when there is none.
func (r ownerResolver) currentUser(ctx *gin.Context) (*entity.User, bool) {
	identity, ok := middleware.IdentityFromContext(ctx.Request.Context())
	if !ok {
		handleError(ctx, domainerror.NewAuthError(
			domainerror.ErrCodeMissingToken,
			"Authentication required",
			nil,
		))
		return nil, false
	}

	user, err := r.resolveOwnerUseCase.Execute(ctx.Request.Context(), auth.ResolveOwnerInput{
		Subject: identity.Subject,
	})
	if err != nil {
		handleError(ctx, err)
		return nil, false
	}
	return user, true
}

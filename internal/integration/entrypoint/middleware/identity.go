// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/musicplayer/backend/internal/application/adapter"
	domainerror "github.com/musicplayer/backend/internal/domain/error"
	"github.com/musicplayer/backend/internal/integration/entrypoint/dto"
)

type identityKey struct{}

// Identity is the verified caller of a request.
type Identity struct {
	Subject string
}

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the identity bound to ctx, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}

// IdentityFilter binds the bearer token's subject to the request context. Requests
// without a valid token continue anonymously.
type IdentityFilter struct {
	tokenService adapter.TokenService
}

// NewIdentityFilter creates a new identity filter instance.
func NewIdentityFilter(tokenService adapter.TokenService) *IdentityFilter {
	return &IdentityFilter{
		tokenService: tokenService,
	}
}

// Handler returns the Gin middleware handler.
func (f *IdentityFilter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		claims, err := f.tokenService.ValidateToken(token)
		if err != nil {
			slog.DebugContext(c.Request.Context(), "Ignoring invalid bearer token",
				"reason", tokenFailureKind(err),
				"path", c.Request.URL.Path,
			)
			c.Next()
			return
		}

		// The request context is per request, unlike the pooled gin.Context.
		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), Identity{Subject: claims.Subject}))
		c.Next()
	}
}

// RequireIdentity rejects requests without a bound identity.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentityFromContext(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authentication required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func tokenFailureKind(err error) string {
	switch {
	case errors.Is(err, domainerror.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domainerror.ErrTokenBadSignature):
		return "bad_signature"
	default:
		return "malformed"
	}
}

// Package router sets up the HTTP routing for the application.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"

	"github.com/musicplayer/backend/internal/integration/entrypoint/controller"
	"github.com/musicplayer/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	userController     *controller.UserController
	trackController    *controller.TrackController
	favoriteController *controller.FavoriteController
	playlistController *controller.PlaylistController
	identityFilter     *middleware.IdentityFilter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	trackController *controller.TrackController,
	favoriteController *controller.FavoriteController,
	playlistController *controller.PlaylistController,
	identityFilter *middleware.IdentityFilter,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		userController:     userController,
		trackController:    trackController,
		favoriteController: favoriteController,
		playlistController: playlistController,
		identityFilter:     identityFilter,
	}
}

// Setup configures the Gin engine with all routes and returns it wrapped in the
// CORS handler.
func (r *Router) Setup(environment string, allowedOrigins []string) http.Handler {
	// Set Gin mode based on environment
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	if environment != "production" {
		r.engine.Use(gin.Logger())
	}
	r.engine.Use(gin.Recovery())
	r.engine.Use(r.identityFilter.Handler())

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})(r.engine)
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", r.authController.Signup)
			auth.POST("/login", r.authController.Login)
		}

		api.GET("/tracks", r.trackController.List)

		favorites := api.Group("/favorites")
		favorites.Use(middleware.RequireIdentity())
		{
			favorites.GET("", r.favoriteController.List)
			favorites.POST("/:trackId", r.favoriteController.Add)
			favorites.DELETE("/:trackId", r.favoriteController.Remove)
		}

		user := api.Group("/user")
		user.Use(middleware.RequireIdentity())
		{
			user.GET("/profile", r.userController.GetProfile)
			user.POST("/favorites", r.userController.ToggleFavorite)
			user.DELETE("/me", r.userController.DeleteAccount)
		}

		playlists := api.Group("/playlists")
		playlists.Use(middleware.RequireIdentity())
		{
			playlists.GET("", r.playlistController.List)
			playlists.POST("", r.playlistController.Create)
			playlists.POST("/:playlistId/tracks", r.playlistController.AddTrack)
		}
	}
}

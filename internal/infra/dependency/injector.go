// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/musicplayer/backend/config"
	"github.com/musicplayer/backend/internal/application/adapter"
	"github.com/musicplayer/backend/internal/application/usecase/auth"
	"github.com/musicplayer/backend/internal/application/usecase/catalog"
	"github.com/musicplayer/backend/internal/application/usecase/curation"
	"github.com/musicplayer/backend/internal/infra/db"
	"github.com/musicplayer/backend/internal/infra/server/router"
	"github.com/musicplayer/backend/internal/integration/adapters"
	"github.com/musicplayer/backend/internal/integration/cache"
	"github.com/musicplayer/backend/internal/integration/entrypoint/controller"
	"github.com/musicplayer/backend/internal/integration/entrypoint/middleware"
	"github.com/musicplayer/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router

	seedTracksUseCase *catalog.SeedTracksUseCase
}

// Option customizes the injector.
type Option func(*options)

type options struct {
	tokenOptions []adapters.TokenOption
}

// WithTokenOptions passes options to the token service, such as a test clock.
func WithTokenOptions(opts ...adapters.TokenOption) Option {
	return func(o *options) {
		o.tokenOptions = append(o.tokenOptions, opts...)
	}
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, which disables the track cache.
func NewInjector(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client, opts ...Option) (*Injector, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(gormDB)
	trackStore := persistence.NewTrackRepository(gormDB)
	favoriteRepo := persistence.NewFavoriteRepository(gormDB)
	playlistRepo := persistence.NewPlaylistRepository(gormDB)
	txManager := persistence.NewTransactionManager(gormDB)

	var trackRepo adapter.TrackRepository = trackStore
	if redisClient != nil {
		trackRepo = cache.NewTrackCache(trackStore, redisClient, cfg.Redis.TrackCacheTTL)
	}

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.Password.HashCost)
	tokenService, err := adapters.NewTokenService(cfg.JWT, o.tokenOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	resolveOwnerUseCase := auth.NewResolveOwnerUseCase(userRepo)
	getProfileUseCase := auth.NewGetProfileUseCase(favoriteRepo, playlistRepo)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(txManager, passwordService)

	// Create curation use cases
	addFavoriteUseCase := curation.NewAddFavoriteUseCase(trackRepo, favoriteRepo)
	removeFavoriteUseCase := curation.NewRemoveFavoriteUseCase(trackRepo, favoriteRepo)
	toggleFavoriteUseCase := curation.NewToggleFavoriteUseCase(txManager)
	listFavoritesUseCase := curation.NewListFavoritesUseCase(favoriteRepo)
	createPlaylistUseCase := curation.NewCreatePlaylistUseCase(playlistRepo)
	listPlaylistsUseCase := curation.NewListPlaylistsUseCase(playlistRepo)
	addTrackToPlaylistUseCase := curation.NewAddTrackToPlaylistUseCase(txManager)

	// Create catalog use cases
	listTracksUseCase := catalog.NewListTracksUseCase(trackRepo)
	seedTracksUseCase := catalog.NewSeedTracksUseCase(trackStore)

	// Create controllers
	dbHealthCheck := func(ctx context.Context) bool {
		return db.Ping(ctx, gormDB)
	}
	var cacheHealthCheck controller.HealthChecker
	if redisClient != nil {
		cacheHealthCheck = func(ctx context.Context) bool {
			return redisClient.Ping(ctx).Err() == nil
		}
	}

	healthController := controller.NewHealthController(dbHealthCheck, cacheHealthCheck)
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	userController := controller.NewUserController(
		resolveOwnerUseCase,
		getProfileUseCase,
		deleteAccountUseCase,
		toggleFavoriteUseCase,
	)
	trackController := controller.NewTrackController(listTracksUseCase)
	favoriteController := controller.NewFavoriteController(
		resolveOwnerUseCase,
		listFavoritesUseCase,
		addFavoriteUseCase,
		removeFavoriteUseCase,
	)
	playlistController := controller.NewPlaylistController(
		resolveOwnerUseCase,
		listPlaylistsUseCase,
		createPlaylistUseCase,
		addTrackToPlaylistUseCase,
	)

	// Create middleware
	identityFilter := middleware.NewIdentityFilter(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		trackController,
		favoriteController,
		playlistController,
		identityFilter,
	)

	return &Injector{
		Config:            cfg,
		DB:                gormDB,
		Redis:             redisClient,
		Router:            r,
		seedTracksUseCase: seedTracksUseCase,
	}, nil
}

// Handler returns the HTTP handler serving every route.
func (i *Injector) Handler() http.Handler {
	return i.Router.Setup(i.Config.Server.Environment, i.Config.Server.CORSAllowedOrigins)
}

// SeedCatalog loads the configured catalog seed file, if any.
func (i *Injector) SeedCatalog(ctx context.Context) error {
	if i.Config.Catalog.SeedFile == "" {
		return nil
	}

	output, err := i.seedTracksUseCase.Execute(ctx, catalog.SeedTracksInput{Path: i.Config.Catalog.SeedFile})
	if err != nil {
		return err
	}

	if i.Redis != nil {
		if err := cache.Flush(ctx, i.Redis); err != nil {
			slog.WarnContext(ctx, "Failed to flush track cache after seeding", "error", err)
		}
	}

	slog.InfoContext(ctx, "Catalog seeded",
		"file", i.Config.Catalog.SeedFile,
		"tracks", output.Upserted,
	)
	return nil
}

package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/musicplayer/backend/internal/application/adapter"
)

// gormTransactionManager implements the adapter.TransactionManager interface.
type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories hands out repositories bound to a single transaction.
type txRepositories struct {
	tx *gorm.DB
}

// Users returns a user repository that locks the rows it reads by ID.
func (r *txRepositories) Users() adapter.UserRepository {
	return &userRepository{db: r.tx, lockRows: true}
}

// Tracks returns a track repository that reads the database directly.
func (r *txRepositories) Tracks() adapter.TrackRepository {
	return NewTrackRepository(r.tx)
}

// Favorites returns a favorite repository bound to the transaction.
func (r *txRepositories) Favorites() adapter.FavoriteRepository {
	return NewFavoriteRepository(r.tx)
}

// Playlists returns a playlist repository that locks the playlist rows it reads.
func (r *txRepositories) Playlists() adapter.PlaylistRepository {
	return &playlistRepository{db: r.tx, lockRows: true}
}

// NewTransactionManager creates a new transaction manager instance.
func NewTransactionManager(db *gorm.DB) adapter.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repos adapter.Repositories) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&txRepositories{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

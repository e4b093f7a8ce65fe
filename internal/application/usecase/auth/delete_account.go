package auth

import (
	"context"
	"fmt"

	"github.com/musicplayer/backend/internal/application/adapter"
	"github.com/musicplayer/backend/internal/domain/entity"
	domainerror "github.com/musicplayer/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	User     *entity.User
	Password string
}

// DeleteAccountUseCase handles account deletion logic.
type DeleteAccountUseCase struct {
	txManager       adapter.TransactionManager
	passwordService adapter.PasswordService
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	txManager adapter.TransactionManager,
	passwordService adapter.PasswordService,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		txManager:       txManager,
		passwordService: passwordService,
	}
}

// Execute deletes the user with their favorites and playlists. Catalog tracks
// are left in place.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	if !uc.passwordService.VerifyPassword(input.User.PasswordHash, input.Password) {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid password",
			domainerror.ErrInvalidCredentials,
		)
	}

	return uc.txManager.Execute(ctx, func(repos adapter.Repositories) error {
		if err := repos.Favorites().DeleteByUser(ctx, input.User.ID); err != nil {
			return fmt.Errorf("failed to delete favorites: %w", err)
		}
		if err := repos.Playlists().DeleteByOwner(ctx, input.User.ID); err != nil {
			return fmt.Errorf("failed to delete playlists: %w", err)
		}
		if err := repos.Users().Delete(ctx, input.User.ID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}

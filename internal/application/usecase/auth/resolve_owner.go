package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/musicplayer/backend/internal/application/adapter"
	"github.com/musicplayer/backend/internal/domain/entity"
	domainerror "github.com/musicplayer/backend/internal/domain/error"
)

// ResolveOwnerInput represents the identity bound to a request.
type ResolveOwnerInput struct {
	Subject string
}

// ResolveOwnerUseCase maps a verified token subject to its user.
type ResolveOwnerUseCase struct {
	userRepo adapter.UserRepository
}

// NewResolveOwnerUseCase creates a new ResolveOwnerUseCase instance.
func NewResolveOwnerUseCase(userRepo adapter.UserRepository) *ResolveOwnerUseCase {
	return &ResolveOwnerUseCase{
		userRepo: userRepo,
	}
}

// Execute returns the user the subject belongs to. A subject whose user no longer
// exists is an authentication failure.
func (uc *ResolveOwnerUseCase) Execute(ctx context.Context, input ResolveOwnerInput) (*entity.User, error) {
	user, err := uc.userRepo.FindByEmail(ctx, input.Subject)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidToken,
				"account no longer exists",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to resolve owner: %w", err)
	}
	return user, nil
}

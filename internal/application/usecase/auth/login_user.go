package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/musicplayer/backend/internal/application/adapter"
	domainerror "github.com/musicplayer/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	Token *adapter.IssuedToken
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService

	dummyOnce sync.Once
	dummyHash string
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"email and password are required",
			domainerror.ErrMissingFields,
		)
	}

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to find user: %w", err)
		}
		// Unknown emails pay for a hash comparison too.
		uc.passwordService.VerifyPassword(uc.dummyDigest(), input.Password)
		return nil, domainerror.NewInvalidCredentialsError()
	}

	if !uc.passwordService.VerifyPassword(user.PasswordHash, input.Password) {
		return nil, domainerror.NewInvalidCredentialsError()
	}

	token, err := uc.tokenService.IssueToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginUserOutput{
		Token: token,
	}, nil
}

// dummyDigest returns a digest produced with the configured cost that no
// submitted password is expected to match.
func (uc *LoginUserUseCase) dummyDigest() string {
	uc.dummyOnce.Do(func() {
		hash, err := uc.passwordService.HashPassword("login-timing-equalizer")
		if err == nil {
			uc.dummyHash = hash
		}
	})
	return uc.dummyHash
}

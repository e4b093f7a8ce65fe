package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/musicplayer/backend/config"
	"github.com/musicplayer/backend/internal/application/adapter"
	"github.com/musicplayer/backend/internal/domain/entity"
	domainerror "github.com/musicplayer/backend/internal/domain/error"
	"github.com/musicplayer/backend/internal/infra/db"
	"github.com/musicplayer/backend/internal/integration/adapters"
	"github.com/musicplayer/backend/internal/integration/persistence"
	"github.com/musicplayer/backend/internal/integration/persistence/model"
)

type fixture struct {
	gdb       *gorm.DB
	users     adapter.UserRepository
	favorites adapter.FavoriteRepository
	playlists adapter.PlaylistRepository
	tracks    persistence.TrackStore
	passwords adapter.PasswordService
	tokens    adapter.TokenService

	register *RegisterUserUseCase
	login    *LoginUserUseCase
	resolve  *ResolveOwnerUseCase
	profile  *GetProfileUseCase
	remove   *DeleteAccountUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	database, err := db.NewConnection(&config.DatabaseConfig{
		Driver:          "sqlite",
		URL:             fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(model.AllModels()...))
	t.Cleanup(func() { _ = database.Close() })

	tokens, err := adapters.NewTokenService(config.JWTConfig{
		Keys:   []config.SigningKey{{ID: "test", Secret: "test-secret"}},
		Expiry: time.Hour,
		Issuer: "musicplayer",
	})
	require.NoError(t, err)

	gdb := database.DB()
	f := &fixture{
		gdb:       gdb,
		users:     persistence.NewUserRepository(gdb),
		favorites: persistence.NewFavoriteRepository(gdb),
		playlists: persistence.NewPlaylistRepository(gdb),
		tracks:    persistence.NewTrackRepository(gdb),
		passwords: adapters.NewPasswordService(bcrypt.MinCost),
		tokens:    tokens,
	}
	f.register = NewRegisterUserUseCase(f.users, f.passwords, f.tokens)
	f.login = NewLoginUserUseCase(f.users, f.passwords, f.tokens)
	f.resolve = NewResolveOwnerUseCase(f.users)
	f.profile = NewGetProfileUseCase(f.favorites, f.playlists)
	f.remove = NewDeleteAccountUseCase(persistence.NewTransactionManager(gdb), f.passwords)
	return f
}

func authCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	require.True(t, errors.As(err, &authErr), "expected AuthError, got %v", err)
	return authErr.Code
}

func TestRegisterUser_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.register.Execute(ctx, RegisterUserInput{Name: " Al ", Email: "AL@Example.com", Password: "pw123"})
	require.NoError(t, err)

	assert.Equal(t, "Al", out.User.Name)
	assert.Equal(t, "AL@Example.com", out.User.Email)
	assert.NotEqual(t, "pw123", out.User.PasswordHash)
	assert.Equal(t, out.User.CreatedAt.Truncate(24*time.Hour), out.User.JoinedAt)

	claims, err := f.tokens.ValidateToken(out.Token.Token)
	require.NoError(t, err)
	assert.Equal(t, "AL@Example.com", claims.Subject)
}

func TestRegisterUser_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		input RegisterUserInput
		code  domainerror.AuthErrorCode
	}{
		{"empty name", RegisterUserInput{Name: "", Email: "a@b.c", Password: "pw"}, domainerror.ErrCodeMissingFields},
		{"whitespace email", RegisterUserInput{Name: "A", Email: "   ", Password: "pw"}, domainerror.ErrCodeMissingFields},
		{"whitespace password", RegisterUserInput{Name: "A", Email: "a@b.c", Password: " \t"}, domainerror.ErrCodeMissingFields},
		{"password too long", RegisterUserInput{Name: "A", Email: "a@b.c", Password: strings.Repeat("x", 73)}, domainerror.ErrCodePasswordTooLong},
		{"name too long", RegisterUserInput{Name: strings.Repeat("n", 101), Email: "a@b.c", Password: "pw"}, domainerror.ErrCodeFieldTooLong},
		{"email too long", RegisterUserInput{Name: "A", Email: strings.Repeat("e", 250) + "@b.com", Password: "pw"}, domainerror.ErrCodeFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.register.Execute(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.code, authCode(t, err))
		})
	}
}

func TestRegisterUser_CaseVariantDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterUserInput{Name: "Al", Email: "AL@Example.com", Password: "pw123"})
	require.NoError(t, err)

	_, err = f.register.Execute(ctx, RegisterUserInput{Name: "Al", Email: "al@example.com", Password: "other"})
	require.Error(t, err)
	assert.Equal(t, domainerror.ErrCodeEmailExists, authCode(t, err))
	assert.ErrorIs(t, err, domainerror.ErrEmailAlreadyExists)
}

func TestRegisterUser_ConcurrentDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	emails := []string{"dup@example.com", "DUP@example.com", "Dup@Example.com", "dup@EXAMPLE.com"}
	var wg sync.WaitGroup
	results := make(chan error, len(emails))
	for _, email := range emails {
		wg.Add(1)
		go func(email string) {
			defer wg.Done()
			_, err := f.register.Execute(ctx, RegisterUserInput{Name: "Dup", Email: email, Password: "pw"})
			results <- err
		}(email)
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		assert.Equal(t, domainerror.ErrCodeEmailExists, authCode(t, err))
	}
	assert.Equal(t, 1, successes)
}

func TestLoginUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.register.Execute(ctx, RegisterUserInput{Name: "Al", Email: "AL@Example.com", Password: "pw123"})
	require.NoError(t, err)

	t.Run("case-insensitive email", func(t *testing.T) {
		out, err := f.login.Execute(ctx, LoginUserInput{Email: "al@example.com", Password: "pw123"})
		require.NoError(t, err)

		claims, err := f.tokens.ValidateToken(out.Token.Token)
		require.NoError(t, err)
		assert.Equal(t, "AL@Example.com", claims.Subject)
	})

	t.Run("unknown email and wrong password are identical", func(t *testing.T) {
		_, wrongPassword := f.login.Execute(ctx, LoginUserInput{Email: "al@example.com", Password: "nope"})
		_, unknownEmail := f.login.Execute(ctx, LoginUserInput{Email: "ghost@example.com", Password: "pw123"})

		require.Error(t, wrongPassword)
		require.Error(t, unknownEmail)
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
		assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, wrongPassword))
		assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, unknownEmail))
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := f.login.Execute(ctx, LoginUserInput{Email: " ", Password: "pw123"})
		assert.Equal(t, domainerror.ErrCodeMissingFields, authCode(t, err))
	})
}

func TestResolveOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.register.Execute(ctx, RegisterUserInput{Name: "Al", Email: "al@example.com", Password: "pw123"})
	require.NoError(t, err)

	user, err := f.resolve.Execute(ctx, ResolveOwnerInput{Subject: "al@example.com"})
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, user.ID)

	_, err = f.resolve.Execute(ctx, ResolveOwnerInput{Subject: "ghost@example.com"})
	assert.Equal(t, domainerror.ErrCodeInvalidToken, authCode(t, err))
}

func seedCollections(t *testing.T, f *fixture, owner *entity.User) *entity.Track {
	t.Helper()
	ctx := context.Background()

	track := &entity.Track{ID: uuid.New(), Title: "Song", Artist: "Artist", URL: "u"}
	require.NoError(t, f.tracks.Upsert(ctx, []*entity.Track{track}))
	require.NoError(t, f.favorites.Add(ctx, owner.ID, track.ID))

	playlist := entity.NewPlaylist(owner.ID, "mine", time.Now())
	require.NoError(t, f.playlists.Create(ctx, playlist))
	require.NoError(t, f.playlists.AddTrack(ctx, playlist.ID, track.ID))
	return track
}

func TestGetProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.register.Execute(ctx, RegisterUserInput{Name: "Al", Email: "al@example.com", Password: "pw123"})
	require.NoError(t, err)
	track := seedCollections(t, f, out.User)

	profile, err := f.profile.Execute(ctx, GetProfileInput{User: out.User})
	require.NoError(t, err)

	assert.Equal(t, out.User.ID, profile.User.ID)
	require.Len(t, profile.Favorites, 1)
	assert.Equal(t, track.ID, profile.Favorites[0].ID)
	require.Len(t, profile.Playlists, 1)
	require.Len(t, profile.Playlists[0].Tracks, 1)
}

func TestDeleteAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.register.Execute(ctx, RegisterUserInput{Name: "Al", Email: "al@example.com", Password: "pw123"})
	require.NoError(t, err)
	track := seedCollections(t, f, out.User)

	err = f.remove.Execute(ctx, DeleteAccountInput{User: out.User, Password: "wrong"})
	assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, err))

	require.NoError(t, f.remove.Execute(ctx, DeleteAccountInput{User: out.User, Password: "pw123"}))

	_, err = f.users.FindByID(ctx, out.User.ID)
	assert.ErrorIs(t, err, domainerror.ErrUserNotFound)

	favorites, err := f.favorites.ListTracks(ctx, out.User.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	playlists, err := f.playlists.ListByOwner(ctx, out.User.ID)
	require.NoError(t, err)
	assert.Empty(t, playlists)

	var memberships int64
	require.NoError(t, f.gdb.Model(&model.PlaylistTrackModel{}).Count(&memberships).Error)
	assert.Zero(t, memberships)

	_, err = f.tracks.FindByID(ctx, track.ID)
	assert.NoError(t, err)

	_, err = f.resolve.Execute(ctx, ResolveOwnerInput{Subject: "al@example.com"})
	assert.Equal(t, domainerror.ErrCodeInvalidToken, authCode(t, err))
}

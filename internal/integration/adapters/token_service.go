package adapters

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/musicplayer/backend/config"
	"github.com/musicplayer/backend/internal/application/adapter"
	domainerror "github.com/musicplayer/backend/internal/domain/error"
)

const ephemeralKeyPrefix = "ephemeral-"

// SessionClaims represents the claims carried by a session token.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// TokenOption customizes a token service.
type TokenOption func(*tokenService)

// WithClock replaces the time source used to issue and validate tokens.
func WithClock(now func() time.Time) TokenOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// tokenService implements the adapter.TokenService interface.
// Its keyring is fixed at construction, so it is safe for concurrent use.
type tokenService struct {
	keys        map[string][]byte
	activeKeyID string
	expiry      time.Duration
	issuer      string
	now         func() time.Time
	parser      *jwt.Parser
}

// NewTokenService creates a new token service from the JWT configuration.
// The active key signs new tokens; every key in the ring verifies.
func NewTokenService(cfg config.JWTConfig, opts ...TokenOption) (adapter.TokenService, error) {
	if cfg.Expiry <= 0 {
		return nil, errors.New("token expiry must be positive")
	}

	s := &tokenService{
		keys:   make(map[string][]byte, len(cfg.Keys)),
		expiry: cfg.Expiry,
		issuer: cfg.Issuer,
		now:    time.Now,
	}

	for _, key := range cfg.Keys {
		if key.ID == "" || key.Secret == "" {
			return nil, errors.New("signing keys need both an id and a secret")
		}
		s.keys[key.ID] = []byte(key.Secret)
		if s.activeKeyID == "" {
			s.activeKeyID = key.ID
		}
	}

	if cfg.ActiveKeyID != "" {
		if _, ok := s.keys[cfg.ActiveKeyID]; !ok {
			return nil, fmt.Errorf("active key %q is not in the keyring", cfg.ActiveKeyID)
		}
		s.activeKeyID = cfg.ActiveKeyID
	}

	if len(s.keys) == 0 {
		if !cfg.AllowEphemeralKey {
			return nil, errors.New("no signing keys configured")
		}
		kid, secret, err := generateEphemeralKey()
		if err != nil {
			return nil, err
		}
		s.keys[kid] = secret
		s.activeKeyID = kid
		slog.Warn("No JWT signing keys configured, using an ephemeral key; sessions will not survive a restart",
			"kid", kid,
		)
	}

	for _, opt := range opts {
		opt(s)
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}
	s.parser = jwt.NewParser(parserOpts...)

	return s, nil
}

// IssueToken signs a new session token for subject with the active key.
func (s *tokenService) IssueToken(subject string) (*adapter.IssuedToken, error) {
	if subject == "" {
		return nil, errors.New("token subject is required")
	}

	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.expiry)

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = s.activeKeyID

	signed, err := token.SignedString(s.keys[s.activeKeyID])
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &adapter.IssuedToken{
		Token:     signed,
		KeyID:     s.activeKeyID,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateToken verifies a session token and returns its claims.
func (s *tokenService) ValidateToken(tokenString string) (*adapter.TokenClaims, error) {
	var kid string
	token, err := s.parser.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		kid, _ = token.Header["kid"].(string)
		secret, ok := s.keys[kid]
		if !ok {
			return nil, fmt.Errorf("unknown key id %q", kid)
		}
		return secret, nil
	})
	if err != nil {
		return nil, classifyTokenError(err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, domainerror.ErrTokenMalformed
	}

	result := &adapter.TokenClaims{
		Subject:   claims.Subject,
		KeyID:     kid,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	return result, nil
}

// classifyTokenError maps jwt parse failures onto the domain token errors.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", domainerror.ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", domainerror.ErrTokenBadSignature, err)
	default:
		return fmt.Errorf("%w: %v", domainerror.ErrTokenMalformed, err)
	}
}

func generateEphemeralKey() (string, []byte, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return "", nil, fmt.Errorf("failed to generate ephemeral key: %w", err)
	}
	id := make([]byte, 4)
	if _, err := rand.Read(id); err != nil {
		return "", nil, fmt.Errorf("failed to generate ephemeral key id: %w", err)
	}
	return ephemeralKeyPrefix + hex.EncodeToString(id), secret, nil
}

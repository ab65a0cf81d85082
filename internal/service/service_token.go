package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/config"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/utils"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

// ephemeralKeySize is the number of random bytes in a generated sign key.
const ephemeralKeySize = 32

// tokenService signs HS256 tokens with one secret for both token kinds.
type tokenService struct {
	signKey         string
	issuer          string
	accessDuration  time.Duration
	refreshDuration time.Duration

	logger *logger.Logger
}

// NewTokenService builds a TokenService from cfg. When no sign key is
// configured a random one is generated, so tokens do not survive a restart.
func NewTokenService(cfg config.App, log *logger.Logger) (TokenService, error) {
	signKey := cfg.TokenSignKey
	if signKey == "" {
		key, err := generateSignKey()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
		}
		signKey = key
		log.Warn().Msg("no token sign key configured, using an ephemeral key; issued tokens become invalid on restart")
	}

	return &tokenService{
		signKey:         signKey,
		issuer:          cfg.TokenIssuer,
		accessDuration:  cfg.AccessTokenDuration,
		refreshDuration: cfg.RefreshTokenDuration,
		logger:          log,
	}, nil
}

func (s *tokenService) IssueTokenPair(ctx context.Context, identity models.Identity) (models.TokenPair, error) {
	access, err := s.IssueAccessToken(ctx, identity)
	if err != nil {
		return models.TokenPair{}, err
	}

	claims := claimsFor(identity)
	claims.Type = models.RefreshTokenType
	refresh, err := utils.GenerateJWTToken(s.issuer, claims, s.refreshDuration, s.signKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *tokenService) IssueAccessToken(ctx context.Context, identity models.Identity) (string, error) {
	token, err := utils.GenerateJWTToken(s.issuer, claimsFor(identity), s.accessDuration, s.signKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

// Verify checks signature, issuer and expiry. The cause of a failure is
// logged at debug level only.
func (s *tokenService) Verify(ctx context.Context, token string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Claims{}, ErrTokenIsExpiredOrInvalid
	}
	return claims, nil
}

func claimsFor(identity models.Identity) models.Claims {
	return models.Claims{
		UserID:   identity.UserID,
		Username: identity.Username,
		Role:     identity.Role,
	}
}

func generateSignKey() (string, error) {
	buf := make([]byte, ephemeralKeySize)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

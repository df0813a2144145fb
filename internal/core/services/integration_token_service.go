package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/apperrors"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portsrepo "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/repositories"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
	"github.com/1-Hour-Automation/client-hub-sub000/internal/utils"
	"github.com/google/uuid"
)

const integrationKeyBytes = 32

// integrationTokenService implements the IntegrationTokenSvcFacade.
type integrationTokenService struct {
	BaseService
	tokenRepo portsrepo.IntegrationTokenRepositoryFacade
}

// NewIntegrationTokenService creates a new integration token service.
func NewIntegrationTokenService(tokenRepo portsrepo.IntegrationTokenRepositoryFacade) portssvc.IntegrationTokenSvcFacade {
	return &integrationTokenService{tokenRepo: tokenRepo}
}

var _ portssvc.IntegrationTokenSvcFacade = (*integrationTokenService)(nil)

// CreateToken mints a new dialer API key; the raw key is returned exactly once.
func (s *integrationTokenService) CreateToken(ctx context.Context, userID, name string, expiresAt *time.Time) (*portssvc.CreatedIntegrationToken, error) {
	if name == "" {
		return nil, apperrors.NewValidationFailedError("token name is required")
	}
	if expiresAt != nil && expiresAt.Before(time.Now()) {
		return nil, apperrors.NewValidationFailedError("expiry must be in the future")
	}

	rawKey, err := utils.GenerateSecureRandomString(integrationKeyBytes)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate integration key")
		return nil, err
	}

	token := domain.IntegrationToken{
		TokenID:   uuid.NewString(),
		UserID:    userID,
		Name:      name,
		TokenHash: utils.HashToken(rawKey),
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	if err := s.tokenRepo.SaveToken(ctx, token); err != nil {
		s.LogError(ctx, err, "Failed to save integration token", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Integration token created",
		slog.String("token_id", token.TokenID),
		slog.String("user_id", userID))
	return &portssvc.CreatedIntegrationToken{Token: token, RawKey: rawKey}, nil
}

// ListTokens returns the user's integration tokens, hashes excluded by the
// domain type's marshaling.
func (s *integrationTokenService) ListTokens(ctx context.Context, userID string) ([]domain.IntegrationToken, error) {
	tokens, err := s.tokenRepo.ListTokensByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list integration tokens", slog.String("user_id", userID))
		return nil, err
	}
	if tokens == nil {
		return []domain.IntegrationToken{}, nil
	}
	return tokens, nil
}

// RevokeToken immediately deactivates a key.
func (s *integrationTokenService) RevokeToken(ctx context.Context, userID, tokenID string) error {
	if err := s.tokenRepo.RevokeToken(ctx, userID, tokenID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to revoke integration token", slog.String("token_id", tokenID))
		return err
	}
	s.LogInfo(ctx, "Integration token revoked", slog.String("token_id", tokenID))
	return nil
}

// ValidateToken authenticates a raw x-api-key and returns the owning user id.
// Revoked and expired keys fail uniformly.
func (s *integrationTokenService) ValidateToken(ctx context.Context, rawKey string) (string, error) {
	if rawKey == "" {
		return "", apperrors.NewAppError(http.StatusUnauthorized, "invalid api key", apperrors.ErrUnauthorized)
	}
	token, err := s.tokenRepo.FindTokenByHash(ctx, utils.HashToken(rawKey))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.NewAppError(http.StatusUnauthorized, "invalid api key", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up integration token")
		return "", err
	}
	if !token.Active(time.Now()) {
		return "", apperrors.NewAppError(http.StatusUnauthorized, "invalid api key", apperrors.ErrUnauthorized)
	}

	if terr := s.tokenRepo.TouchToken(ctx, token.TokenID, time.Now()); terr != nil {
		// Best effort; last-used tracking must not block the request.
		s.LogWarn(ctx, "Failed to update token last-used time",
			slog.String("token_id", token.TokenID),
			slog.String("error", terr.Error()))
	}
	return token.UserID, nil
}

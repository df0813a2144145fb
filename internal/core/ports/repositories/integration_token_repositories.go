package repositories

import (
	"context"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// IntegrationTokenRepositoryFacade manages dialer integration tokens.
type IntegrationTokenRepositoryFacade interface {
	FindTokenByHash(ctx context.Context, tokenHash string) (*domain.IntegrationToken, error)
	ListTokensByUser(ctx context.Context, userID string) ([]domain.IntegrationToken, error)
	SaveToken(ctx context.Context, token domain.IntegrationToken) error
	RevokeToken(ctx context.Context, userID, tokenID string, revokedAt time.Time) error
	TouchToken(ctx context.Context, tokenID string, usedAt time.Time) error
}

package services

import (
	"context"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// CreatedIntegrationToken pairs the stored row with the raw key, returned once.
type CreatedIntegrationToken struct {
	Token  domain.IntegrationToken
	RawKey string
}

// IntegrationTokenSvcFacade manages dialer API keys and authenticates the
// x-api-key request path.
type IntegrationTokenSvcFacade interface {
	CreateToken(ctx context.Context, userID, name string, expiresAt *time.Time) (*CreatedIntegrationToken, error)
	ListTokens(ctx context.Context, userID string) ([]domain.IntegrationToken, error)
	RevokeToken(ctx context.Context, userID, tokenID string) error
	// ValidateToken returns the owning user id for an active raw key.
	ValidateToken(ctx context.Context, rawKey string) (string, error)
}

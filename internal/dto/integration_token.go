package dto

import (
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
	portssvc "github.com/1-Hour-Automation/client-hub-sub000/internal/core/ports/services"
)

// CreateIntegrationTokenRequest mints a dialer API key.
type CreateIntegrationTokenRequest struct {
	Name      string     `json:"name" binding:"required"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// IntegrationTokenResponse defines data returned for an integration token.
// The key itself never appears here.
type IntegrationTokenResponse struct {
	TokenID    string     `json:"tokenID"`
	Name       string     `json:"name"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	RevokedAt  *time.Time `json:"revokedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ToIntegrationTokenResponse converts domain.IntegrationToken to DTO.
func ToIntegrationTokenResponse(t *domain.IntegrationToken) IntegrationTokenResponse {
	return IntegrationTokenResponse{
		TokenID:    t.TokenID,
		Name:       t.Name,
		LastUsedAt: t.LastUsedAt,
		ExpiresAt:  t.ExpiresAt,
		RevokedAt:  t.RevokedAt,
		CreatedAt:  t.CreatedAt,
	}
}

// CreatedIntegrationTokenResponse carries the token row plus the raw key,
// shown exactly once.
type CreatedIntegrationTokenResponse struct {
	Token IntegrationTokenResponse `json:"token"`
	Key   string                   `json:"key"`
}

// ToCreatedIntegrationTokenResponse converts the service result to DTO.
func ToCreatedIntegrationTokenResponse(created *portssvc.CreatedIntegrationToken) CreatedIntegrationTokenResponse {
	return CreatedIntegrationTokenResponse{
		Token: ToIntegrationTokenResponse(&created.Token),
		Key:   created.RawKey,
	}
}

// ListIntegrationTokensResponse wraps a user's tokens.
type ListIntegrationTokensResponse struct {
	Tokens []IntegrationTokenResponse `json:"tokens"`
}

// ToListIntegrationTokensResponse converts a slice of tokens to DTO.
func ToListIntegrationTokensResponse(tokens []domain.IntegrationToken) ListIntegrationTokensResponse {
	list := make([]IntegrationTokenResponse, len(tokens))
	for i, t := range tokens {
		list[i] = ToIntegrationTokenResponse(&t)
	}
	return ListIntegrationTokensResponse{Tokens: list}
}

package repositories

import (
	"context"
	"time"

	"github.com/1-Hour-Automation/client-hub-sub000/internal/core/domain"
)

// UserReader defines read operations for user rows.
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error)
	FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user rows.
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	UpdateUser(ctx context.Context, user domain.User) error
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deleterUserID string) error
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user repository capabilities.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

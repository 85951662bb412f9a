package ports

import (
	"context"

	"github.com/gamevault/review-system/internal/core/domain"
)

// AccountRepository defines the interface for credential persistence.
// Uniqueness of username is a store-level constraint: Create reports
// domain.ErrUsernameTaken when the insert loses to an existing document,
// which makes concurrent duplicate registrations safe without a
// check-then-insert from the service.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByUsernameAndRole(ctx context.Context, username, role string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
}

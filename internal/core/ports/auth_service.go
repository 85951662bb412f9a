package ports

import (
	"context"

	"github.com/gamevault/review-system/internal/core/domain"
)

type AuthService interface {
	// Register creates an account with the given role. The role comes from
	// the surrounding route, never from user input.
	Register(ctx context.Context, username, password, role string) (*domain.Account, error)
	// Login authenticates username/password against the account registered
	// under role and returns a signed bearer token on success.
	Login(ctx context.Context, username, password, role string) (string, *domain.Account, error)
	// Profile returns the account for a verified token subject.
	Profile(ctx context.Context, id string) (*domain.Account, error)
}

package ports

import (
	"context"

	"github.com/gamevault/review-system/internal/core/domain"
)

// CreateGameInput carries the fields accepted from the transport layer.
type CreateGameInput struct {
	Title       string
	Genre       string
	ReleaseYear int
}

type GameService interface {
	Create(ctx context.Context, in CreateGameInput) (*domain.Game, error)
	Update(ctx context.Context, id string, in CreateGameInput) (*domain.Game, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Game, error)
}

// GameCache is a read-through cache over the public game list. A miss is
// reported as domain.ErrCacheMiss; any other error means the cache backend
// is unhealthy and callers fall back to the repository.
type GameCache interface {
	GetList(ctx context.Context) ([]*domain.Game, error)
	SetList(ctx context.Context, games []*domain.Game) error
	Invalidate(ctx context.Context) error
}

package ports

import (
	"context"

	"github.com/gamevault/review-system/internal/core/domain"
)

// GameRepository defines persistence operations for catalog entries.
type GameRepository interface {
	Create(ctx context.Context, g *domain.Game) (*domain.Game, error)
	// Update replaces the mutable fields of the game with the given id and
	// returns the updated document, or domain.ErrGameNotFound.
	Update(ctx context.Context, id string, g *domain.Game) (*domain.Game, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Game, error)
	List(ctx context.Context) ([]*domain.Game, error)
}

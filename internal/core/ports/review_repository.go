package ports

import (
	"context"

	"github.com/gamevault/review-system/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) (*domain.Review, error)
	// List returns all reviews with their Game field populated from the
	// catalog (newest first).
	List(ctx context.Context) ([]*domain.Review, error)
}

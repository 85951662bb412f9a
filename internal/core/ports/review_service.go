package ports

import (
	"context"

	"github.com/gamevault/review-system/internal/core/domain"
)

// CreateReviewInput carries a new review. Username is the identity attached
// by the auth middleware, not a client-supplied field.
type CreateReviewInput struct {
	Username string
	GameID   string
	Text     string
	Rating   int
}

type ReviewService interface {
	Create(ctx context.Context, in CreateReviewInput) (*domain.Review, error)
	List(ctx context.Context) ([]*domain.Review, error)
}

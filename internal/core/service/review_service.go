package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gamevault/review-system/internal/core/domain"
	"github.com/gamevault/review-system/internal/core/ports"
)

// ReviewService implements review creation and listing.
type ReviewService struct {
	reviews ports.ReviewRepository
	games   ports.GameRepository
	log     zerolog.Logger
}

func NewReviewService(reviews ports.ReviewRepository, games ports.GameRepository, log zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, games: games, log: log}
}

// Create validates the review and persists it. The referenced game must
// exist; the username is the authenticated identity.
func (s *ReviewService) Create(ctx context.Context, in ports.CreateReviewInput) (*domain.Review, error) {
	if in.Username == "" || in.GameID == "" || in.Text == "" {
		return nil, domain.ErrMissingFields
	}
	if in.Rating < domain.RatingMin || in.Rating > domain.RatingMax {
		return nil, domain.ErrInvalidRating
	}

	if _, err := s.games.FindByID(ctx, in.GameID); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	created, err := s.reviews.Create(ctx, &domain.Review{
		Username:  in.Username,
		GameID:    in.GameID,
		Text:      in.Text,
		Rating:    in.Rating,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", in.Username).Str("game_id", in.GameID).Int("rating", in.Rating).Msg("review created")
	return created, nil
}

func (s *ReviewService) List(ctx context.Context) ([]*domain.Review, error) {
	return s.reviews.List(ctx)
}

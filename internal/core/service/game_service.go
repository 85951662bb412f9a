package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/gamevault/review-system/internal/core/domain"
	"github.com/gamevault/review-system/internal/core/ports"
)

// GameService implements catalog CRUD with a read-through cache on the
// public list.
type GameService struct {
	repo  ports.GameRepository
	cache ports.GameCache
	log   zerolog.Logger
}

func NewGameService(repo ports.GameRepository, cache ports.GameCache, log zerolog.Logger) *GameService {
	return &GameService{repo: repo, cache: cache, log: log}
}

func (s *GameService) Create(ctx context.Context, in ports.CreateGameInput) (*domain.Game, error) {
	if in.Title == "" || in.Genre == "" || in.ReleaseYear == 0 {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Game{
		Title:       in.Title,
		Genre:       in.Genre,
		ReleaseYear: in.ReleaseYear,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.Info().Str("game_id", created.ID).Str("title", created.Title).Msg("game created")
	return created, nil
}

func (s *GameService) Update(ctx context.Context, id string, in ports.CreateGameInput) (*domain.Game, error) {
	if in.Title == "" || in.Genre == "" || in.ReleaseYear == 0 {
		return nil, domain.ErrMissingFields
	}

	updated, err := s.repo.Update(ctx, id, &domain.Game{
		Title:       in.Title,
		Genre:       in.Genre,
		ReleaseYear: in.ReleaseYear,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return updated, nil
}

func (s *GameService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// List serves from the cache when possible; on a miss (or cache failure) it
// reads the repository and repopulates.
func (s *GameService) List(ctx context.Context) ([]*domain.Game, error) {
	if s.cache != nil {
		games, err := s.cache.GetList(ctx)
		if err == nil {
			return games, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.log.Warn().Err(err).Msg("game list cache read failed, falling back to store")
		}
	}

	games, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, games); err != nil {
			s.log.Warn().Err(err).Msg("game list cache write failed")
		}
	}
	return games, nil
}

func (s *GameService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("game list cache invalidation failed")
	}
}

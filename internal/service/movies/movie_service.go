package movies

import (
	"context"
	"log/slog"

	"github.com/dverbeek/cinebook/internal/domain"
	"github.com/dverbeek/cinebook/internal/repository"
)

type MovieUseCase interface {
	List(ctx context.Context) (map[string]domain.Movie, error)
	GetByID(ctx context.Context, id string) (*domain.Movie, error)
	UpdateRating(ctx context.Context, id string, rating float64) (*domain.Movie, error)
}

type Cache interface {
	GetCatalog(ctx context.Context) (map[string]domain.Movie, error)
	SetCatalog(ctx context.Context, movies map[string]domain.Movie) error
	InvalidateCatalog(ctx context.Context) error
}

type MovieService struct {
	repo  repository.MovieRepository
	cache Cache
	log   *slog.Logger
}

func NewMovieService(repo repository.MovieRepository, cache Cache, log *slog.Logger) *MovieService {
	return &MovieService{repo: repo, cache: cache, log: log}
}

func (s *MovieService) List(ctx context.Context) (map[string]domain.Movie, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetCatalog(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetCatalog(ctx, movies); err != nil {
			s.log.Warn("set catalog cache failed", "error", err)
		}
	}
	return movies, nil
}

func (s *MovieService) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MovieService) UpdateRating(ctx context.Context, id string, rating float64) (*domain.Movie, error) {
	if rating < 0 || rating > 10 {
		return nil, domain.ErrInvalidRating
	}

	movie, err := s.repo.UpdateRating(ctx, id, rating)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.InvalidateCatalog(ctx); err != nil {
			s.log.Warn("invalidate catalog cache failed", "error", err)
		}
	}
	return movie, nil
}

var _ MovieUseCase = (*MovieService)(nil)

package showtimes

import (
	"context"

	"github.com/dverbeek/cinebook/internal/domain"
	"github.com/dverbeek/cinebook/internal/repository"
)

type ShowtimeUseCase interface {
	List(ctx context.Context) ([]domain.ShowtimeSlot, error)
	GetByDate(ctx context.Context, date string) (*domain.ShowtimeSlot, error)
}

type ShowtimeService struct {
	repo repository.ShowtimeRepository
}

func NewShowtimeService(repo repository.ShowtimeRepository) *ShowtimeService {
	return &ShowtimeService{repo: repo}
}

func (s *ShowtimeService) List(ctx context.Context) ([]domain.ShowtimeSlot, error) {
	return s.repo.List(ctx)
}

func (s *ShowtimeService) GetByDate(ctx context.Context, date string) (*domain.ShowtimeSlot, error) {
	return s.repo.GetByDate(ctx, date)
}

var _ ShowtimeUseCase = (*ShowtimeService)(nil)

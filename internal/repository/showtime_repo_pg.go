package repository

import (
	"context"
	"errors"

	"github.com/dverbeek/cinebook/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ShowtimeRepository interface {
	List(ctx context.Context) ([]domain.ShowtimeSlot, error)
	GetByDate(ctx context.Context, date string) (*domain.ShowtimeSlot, error)
}

type PGShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewShowtimeRepository(db *pgxpool.Pool) ShowtimeRepository {
	return &PGShowtimeRepository{db: db}
}

func (r *PGShowtimeRepository) List(ctx context.Context) ([]domain.ShowtimeSlot, error) {
	rows, err := r.db.Query(ctx, `SELECT date, movies FROM showtimes ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]domain.ShowtimeSlot, 0)
	for rows.Next() {
		var s domain.ShowtimeSlot
		if err := rows.Scan(&s.Date, &s.Movies); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

func (r *PGShowtimeRepository) GetByDate(ctx context.Context, date string) (*domain.ShowtimeSlot, error) {
	row := r.db.QueryRow(ctx, `SELECT date, movies FROM showtimes WHERE date=$1`, date)
	var s domain.ShowtimeSlot
	if err := row.Scan(&s.Date, &s.Movies); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShowtimeNotFound
		}
		return nil, err
	}
	return &s, nil
}

var _ ShowtimeRepository = (*PGShowtimeRepository)(nil)

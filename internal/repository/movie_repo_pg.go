package repository

import (
	"context"
	"errors"

	"github.com/dverbeek/cinebook/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MovieRepository interface {
	List(ctx context.Context) (map[string]domain.Movie, error)
	GetByID(ctx context.Context, id string) (*domain.Movie, error)
	UpdateRating(ctx context.Context, id string, rating float64) (*domain.Movie, error)
}

type PGMovieRepository struct {
	db *pgxpool.Pool
}

func NewMovieRepository(db *pgxpool.Pool) MovieRepository {
	return &PGMovieRepository{db: db}
}

func (r *PGMovieRepository) List(ctx context.Context) (map[string]domain.Movie, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, director, rating FROM movies`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make(map[string]domain.Movie)
	for rows.Next() {
		var m domain.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Director, &m.Rating); err != nil {
			return nil, err
		}
		movies[m.ID] = m
	}
	return movies, rows.Err()
}

func (r *PGMovieRepository) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	row := r.db.QueryRow(ctx, `SELECT id, title, director, rating FROM movies WHERE id=$1`, id)
	var m domain.Movie
	if err := row.Scan(&m.ID, &m.Title, &m.Director, &m.Rating); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *PGMovieRepository) UpdateRating(ctx context.Context, id string, rating float64) (*domain.Movie, error) {
	row := r.db.QueryRow(ctx, `UPDATE movies SET rating=$1 WHERE id=$2 RETURNING id, title, director, rating`, rating, id)
	var m domain.Movie
	if err := row.Scan(&m.ID, &m.Title, &m.Director, &m.Rating); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

var _ MovieRepository = (*PGMovieRepository)(nil)

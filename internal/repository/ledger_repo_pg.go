package repository

import (
	"context"
	"errors"

	"github.com/dverbeek/cinebook/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LedgerRepository owns the per-user booking ledger. Rows are stored one per
// (user, date, movie) and aggregated back into the nested date->movies shape
// on read, in insertion order.
type LedgerRepository interface {
	GetByUser(ctx context.Context, userID string) ([]domain.DateEntry, error)
	AddMovie(ctx context.Context, userID, date, movieID string) error
}

type PGLedgerRepository struct {
	db *pgxpool.Pool
}

func NewLedgerRepository(db *pgxpool.Pool) LedgerRepository {
	return &PGLedgerRepository{db: db}
}

func (r *PGLedgerRepository) GetByUser(ctx context.Context, userID string) ([]domain.DateEntry, error) {
	rows, err := r.db.Query(ctx, `SELECT date, movie_id FROM booking_entries WHERE user_id=$1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.DateEntry, 0)
	index := make(map[string]int)
	for rows.Next() {
		var date, movieID string
		if err := rows.Scan(&date, &movieID); err != nil {
			return nil, err
		}
		if i, ok := index[date]; ok {
			entries[i].Movies = append(entries[i].Movies, movieID)
			continue
		}
		index[date] = len(entries)
		entries = append(entries, domain.DateEntry{Date: date, Movies: []string{movieID}})
	}
	return entries, rows.Err()
}

func (r *PGLedgerRepository) AddMovie(ctx context.Context, userID, date, movieID string) error {
	_, err := r.db.Exec(ctx, `INSERT INTO booking_entries (user_id, date, movie_id) VALUES ($1, $2, $3)`, userID, date, movieID)
	if err != nil {
		// The unique constraint backstops the duplicate check done in the
		// booking service under the per-user lock.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateBooking
		}
		return err
	}
	return nil
}

var _ LedgerRepository = (*PGLedgerRepository)(nil)

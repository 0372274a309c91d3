package bookings

import "github.com/dverbeek/cinebook/internal/domain"

// Apply adds a validated booking to a user's ledger snapshot and returns the
// updated list. Pure function: the input is copied, never mutated. An entry
// for the booking date gets the movie appended unless it is already present
// (idempotent append); otherwise a new entry is appended at the end. Untouched
// entries keep their order.
func Apply(entries []domain.DateEntry, booking domain.ValidatedBooking) []domain.DateEntry {
	out := make([]domain.DateEntry, len(entries))
	for i, e := range entries {
		movies := make([]string, len(e.Movies))
		copy(movies, e.Movies)
		out[i] = domain.DateEntry{Date: e.Date, Movies: movies}
	}

	for i := range out {
		if out[i].Date != booking.Date {
			continue
		}
		for _, id := range out[i].Movies {
			if id == booking.MovieID {
				return out
			}
		}
		out[i].Movies = append(out[i].Movies, booking.MovieID)
		return out
	}

	return append(out, domain.DateEntry{Date: booking.Date, Movies: []string{booking.MovieID}})
}

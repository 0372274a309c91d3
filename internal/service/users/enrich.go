package users

import "github.com/dverbeek/cinebook/internal/domain"

// Enrich merges a raw booking record with a catalog snapshot. Every movie id
// becomes a resolved reference when present in the snapshot and a stub
// otherwise, so an unknown or deleted movie never vanishes from a user's
// history. Order is preserved and the inputs are not mutated.
func Enrich(raw []domain.DateEntry, catalog map[string]domain.Movie) []domain.EnrichedDateEntry {
	out := make([]domain.EnrichedDateEntry, 0, len(raw))
	for _, entry := range raw {
		movies := make([]domain.MovieRef, 0, len(entry.Movies))
		for _, id := range entry.Movies {
			if m, ok := catalog[id]; ok {
				movies = append(movies, domain.ResolvedRef(m))
			} else {
				movies = append(movies, domain.StubRef(id))
			}
		}
		out = append(out, domain.EnrichedDateEntry{Date: entry.Date, Movies: movies})
	}
	return out
}

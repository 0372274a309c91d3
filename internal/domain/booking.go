package domain

import "encoding/json"

// DateEntry binds one calendar date to the movies a user has booked for it.
// A user's ledger holds at most one entry per date, and a movie id appears at
// most once inside an entry.
type DateEntry struct {
	Date   string   `json:"date"`
	Movies []string `json:"movies"`
}

// ValidatedBooking is a booking request that passed every validation check and
// is ready to be applied to the user's ledger.
type ValidatedBooking struct {
	UserID  string
	Date    string
	MovieID string
}

// MovieRef is either a resolved reference carrying full movie metadata or a
// stub carrying only the id. The variant is decided once, during enrichment,
// and never re-inferred from the value shape afterwards.
type MovieRef struct {
	id    string
	movie *Movie
}

func ResolvedRef(m Movie) MovieRef {
	return MovieRef{id: m.ID, movie: &m}
}

func StubRef(id string) MovieRef {
	return MovieRef{id: id}
}

func (r MovieRef) ID() string {
	return r.id
}

// Resolved returns the movie metadata and true for a resolved reference,
// a zero Movie and false for a stub.
func (r MovieRef) Resolved() (Movie, bool) {
	if r.movie == nil {
		return Movie{}, false
	}
	return *r.movie, true
}

func (r MovieRef) MarshalJSON() ([]byte, error) {
	if r.movie != nil {
		return json.Marshal(r.movie)
	}
	return json.Marshal(struct {
		ID string `json:"id"`
	}{ID: r.id})
}

type EnrichedDateEntry struct {
	Date   string     `json:"date"`
	Movies []MovieRef `json:"movies"`
}

// EnrichedBookings is the merged view of a user's ledger returned by the user
// service: every raw movie id replaced by metadata where available.
type EnrichedBookings struct {
	UserID string              `json:"userid"`
	Dates  []EnrichedDateEntry `json:"dates"`
}

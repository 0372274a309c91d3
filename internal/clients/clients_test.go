package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dverbeek/cinebook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_GetMovie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/movies/m1", r.URL.Path)
		json.NewEncoder(w).Encode(domain.Movie{ID: "m1", Title: "X", Director: "Y", Rating: 8.1})
	}))
	defer server.Close()

	movie, err := NewCatalog(server.URL).GetMovie(context.Background(), "m1")

	require.NoError(t, err)
	assert.Equal(t, "X", movie.Title)
	assert.Equal(t, 8.1, movie.Rating)
}

func TestCatalog_GetMovie_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"movie not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewCatalog(server.URL).GetMovie(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrMovieNotFound)
}

func TestCatalog_GetMovie_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewCatalog(server.URL).GetMovie(context.Background(), "m1")

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.NotErrorIs(t, err, domain.ErrMovieNotFound)
}

func TestCatalog_GetMovie_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewCatalog(server.URL).GetMovie(context.Background(), "m1")

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestCatalog_ListAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movies", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]domain.Movie{
			"m1": {ID: "m1", Title: "X"},
			"m2": {ID: "m2", Title: "Z"},
		})
	}))
	defer server.Close()

	movies, err := NewCatalog(server.URL).ListAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, movies, 2)
	assert.Equal(t, "Z", movies["m2"].Title)
}

func TestCatalog_UpdateRating(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/movies/m1/rating", r.URL.Path)

		var body struct {
			Rating float64 `json:"rating"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 7.5, body.Rating)

		json.NewEncoder(w).Encode(domain.Movie{ID: "m1", Rating: body.Rating})
	}))
	defer server.Close()

	movie, err := NewCatalog(server.URL).UpdateRating(context.Background(), "m1", 7.5)

	require.NoError(t, err)
	assert.Equal(t, 7.5, movie.Rating)
}

func TestCatalog_UpdateRating_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rating must be a number between 0 and 10"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := NewCatalog(server.URL).UpdateRating(context.Background(), "m1", 42)

	assert.ErrorIs(t, err, domain.ErrInvalidRating)
}

func TestCalendar_GetSlot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/showtimes/20240701", r.URL.Path)
		json.NewEncoder(w).Encode(domain.ShowtimeSlot{Date: "20240701", Movies: []string{"m1", "m2"}})
	}))
	defer server.Close()

	slot, err := NewCalendar(server.URL).GetSlot(context.Background(), "20240701")

	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m2"}, slot.Movies)
}

func TestCalendar_GetSlot_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"showtime not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewCalendar(server.URL).GetSlot(context.Background(), "19990101")

	assert.ErrorIs(t, err, domain.ErrShowtimeNotFound)
}

func TestCalendar_GetSlot_Outage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewCalendar(server.URL).GetSlot(context.Background(), "20240701")

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.NotErrorIs(t, err, domain.ErrShowtimeNotFound)
}

func TestLedger_GetByUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/u1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"userid": "u1",
			"dates":  []domain.DateEntry{{Date: "20240701", Movies: []string{"m1"}}},
		})
	}))
	defer server.Close()

	entries, err := NewLedger(server.URL).GetByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, []domain.DateEntry{{Date: "20240701", Movies: []string{"m1"}}}, entries)
}

func TestLedger_GetByUser_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"booking not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewLedger(server.URL).GetByUser(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestLedger_Add(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings/u1", r.URL.Path)

		var body struct {
			Date  string `json:"date"`
			Movie string `json:"movie"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "20240701", body.Date)
		assert.Equal(t, "m1", body.Movie)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "booking added",
			"userid":  "u1",
			"dates":   []domain.DateEntry{{Date: "20240701", Movies: []string{"m1"}}},
		})
	}))
	defer server.Close()

	entries, err := NewLedger(server.URL).Add(context.Background(), "u1", "20240701", "m1")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"m1"}, entries[0].Movies)
}

// A 400 from the booking service carries the accumulated field errors; the
// client must surface them as a ValidationError, not as an outage.
func TestLedger_Add_ValidationBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "invalid data",
			"errors": []domain.FieldError{
				{Field: "date", Code: domain.CodeDateInPast, Message: "date must not be in the past"},
				{Field: "movie", Code: domain.CodeMissingMovie, Message: "movie must not be empty"},
			},
		})
	}))
	defer server.Close()

	_, err := NewLedger(server.URL).Add(context.Background(), "u1", "20231231", "")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, domain.CodeDateInPast, verr.Fields[0].Code)
	assert.Equal(t, domain.CodeMissingMovie, verr.Fields[1].Code)
	assert.NotErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestLedger_Add_MalformedBadRequestIsOutage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not json", http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := NewLedger(server.URL).Add(context.Background(), "u1", "20240701", "m1")

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestLedger_Add_Duplicate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"movie already booked for this date"}`, http.StatusConflict)
	}))
	defer server.Close()

	_, err := NewLedger(server.URL).Add(context.Background(), "u1", "20240701", "m1")

	assert.ErrorIs(t, err, domain.ErrDuplicateBooking)
}

func TestLedger_Add_UserNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"user not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewLedger(server.URL).Add(context.Background(), "ghost", "20240701", "m1")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

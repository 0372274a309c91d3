package bookings

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/dverbeek/cinebook/internal/domain"
)

var dateRe = regexp.MustCompile(`^\d{4}(0[1-9]|1[0-2])(0[1-9]|[12]\d|3[01])$`)

// Validator checks a booking request against the showtime calendar and the
// movie catalog. Field errors are accumulated and returned together; remote
// checks for a field run only when its stateless checks passed, so a past
// date never also reports a calendar miss. Transport failures abort the whole
// attempt with domain.ErrUpstreamUnavailable.
type Validator struct {
	calendar CalendarClient
	catalog  CatalogClient
	now      func() time.Time
}

func NewValidator(calendar CalendarClient, catalog CatalogClient) *Validator {
	return &Validator{calendar: calendar, catalog: catalog, now: time.Now}
}

func (v *Validator) Validate(ctx context.Context, userID, date, movieID string) (domain.ValidatedBooking, error) {
	verr := &domain.ValidationError{}

	dateOK := false
	switch {
	case date == "":
		verr.Add("date", domain.CodeMissingField, "date must not be empty")
	case !dateRe.MatchString(date):
		verr.Add("date", domain.CodeInvalidDateFormat, "date must be in the format YYYYMMDD")
	case v.inPast(date):
		verr.Add("date", domain.CodeDateInPast, "date must not be in the past")
	default:
		dateOK = true
	}

	var slot *domain.ShowtimeSlot
	if dateOK {
		s, err := v.calendar.GetSlot(ctx, date)
		switch {
		case errors.Is(err, domain.ErrShowtimeNotFound):
			verr.Add("date", domain.CodeDateNotScheduled, "no showtime scheduled for this date")
		case err != nil:
			return domain.ValidatedBooking{}, err
		default:
			slot = s
		}
	}

	if movieID == "" {
		verr.Add("movie", domain.CodeMissingMovie, "movie must not be empty")
	} else {
		_, err := v.catalog.GetMovie(ctx, movieID)
		switch {
		case errors.Is(err, domain.ErrMovieNotFound):
			verr.Add("movie", domain.CodeMovieNotFound, "movie not found")
		case err != nil:
			return domain.ValidatedBooking{}, err
		default:
			if slot != nil && !contains(slot.Movies, movieID) {
				verr.Add("movie", domain.CodeMovieNotScheduled, "movie not scheduled for this date")
			}
		}
	}

	if verr.HasErrors() {
		return domain.ValidatedBooking{}, verr
	}
	return domain.ValidatedBooking{UserID: userID, Date: date, MovieID: movieID}, nil
}

func (v *Validator) inPast(date string) bool {
	requested, err := strconv.Atoi(date)
	if err != nil {
		return false
	}
	today, _ := strconv.Atoi(v.now().Format("20060102"))
	return requested < today
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

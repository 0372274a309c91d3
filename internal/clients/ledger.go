package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dverbeek/cinebook/internal/domain"
)

// Ledger is the typed client for the booking service. The booking service
// performs validation, mutation and persistence atomically from the caller's
// perspective; this client only translates the wire responses back into
// domain errors, including the accumulated multi-field validation body.
type Ledger struct {
	baseURL string
	http    *http.Client
}

func NewLedger(baseURL string) *Ledger {
	return &Ledger{baseURL: trimBase(baseURL), http: newHTTPClient()}
}

type ledgerResponse struct {
	UserID string             `json:"userid"`
	Dates  []domain.DateEntry `json:"dates"`
}

type ledgerErrorResponse struct {
	Error   string              `json:"error"`
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors"`
}

func (c *Ledger) GetByUser(ctx context.Context, userID string) ([]domain.DateEntry, error) {
	req, err := newRequest(ctx, http.MethodGet, c.baseURL+"/bookings/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrBookingNotFound
	default:
		return nil, fmt.Errorf("%w: ledger returned status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var body ledgerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode bookings: %v", domain.ErrUpstreamUnavailable, err)
	}
	return body.Dates, nil
}

func (c *Ledger) Add(ctx context.Context, userID, date, movieID string) ([]domain.DateEntry, error) {
	payload := struct {
		Date  string `json:"date"`
		Movie string `json:"movie"`
	}{Date: date, Movie: movieID}

	req, err := newRequest(ctx, http.MethodPost, c.baseURL+"/bookings/"+url.PathEscape(userID), payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		var body ledgerResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("%w: decode bookings: %v", domain.ErrUpstreamUnavailable, err)
		}
		return body.Dates, nil
	case http.StatusBadRequest:
		var body ledgerErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body.Errors) == 0 {
			return nil, fmt.Errorf("%w: ledger rejected request", domain.ErrUpstreamUnavailable)
		}
		return nil, &domain.ValidationError{Fields: body.Errors}
	case http.StatusConflict:
		return nil, domain.ErrDuplicateBooking
	case http.StatusNotFound:
		return nil, domain.ErrUserNotFound
	default:
		return nil, fmt.Errorf("%w: ledger returned status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}
}

package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dverbeek/cinebook/internal/domain"
)

// Calendar is the typed client for the showtime service.
type Calendar struct {
	baseURL string
	http    *http.Client
}

func NewCalendar(baseURL string) *Calendar {
	return &Calendar{baseURL: trimBase(baseURL), http: newHTTPClient()}
}

func (c *Calendar) GetSlot(ctx context.Context, date string) (*domain.ShowtimeSlot, error) {
	req, err := newRequest(ctx, http.MethodGet, c.baseURL+"/showtimes/"+url.PathEscape(date), nil)
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
		return nil, domain.ErrShowtimeNotFound
	default:
		return nil, fmt.Errorf("%w: calendar returned status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var s domain.ShowtimeSlot
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: decode slot: %v", domain.ErrUpstreamUnavailable, err)
	}
	return &s, nil
}

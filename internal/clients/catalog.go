package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dverbeek/cinebook/internal/domain"
)

// Catalog is the typed client for the movie service.
type Catalog struct {
	baseURL string
	http    *http.Client
}

func NewCatalog(baseURL string) *Catalog {
	return &Catalog{baseURL: trimBase(baseURL), http: newHTTPClient()}
}

func (c *Catalog) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	req, err := newRequest(ctx, http.MethodGet, c.baseURL+"/movies/"+url.PathEscape(id), nil)
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
		return nil, domain.ErrMovieNotFound
	default:
		return nil, fmt.Errorf("%w: catalog returned status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var m domain.Movie
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: decode movie: %v", domain.ErrUpstreamUnavailable, err)
	}
	return &m, nil
}

func (c *Catalog) ListAll(ctx context.Context) (map[string]domain.Movie, error) {
	req, err := newRequest(ctx, http.MethodGet, c.baseURL+"/movies", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: catalog returned status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var movies map[string]domain.Movie
	if err := json.NewDecoder(resp.Body).Decode(&movies); err != nil {
		return nil, fmt.Errorf("%w: decode catalog: %v", domain.ErrUpstreamUnavailable, err)
	}
	return movies, nil
}

func (c *Catalog) UpdateRating(ctx context.Context, id string, rating float64) (*domain.Movie, error) {
	payload := struct {
		Rating float64 `json:"rating"`
	}{Rating: rating}

	req, err := newRequest(ctx, http.MethodPut, c.baseURL+"/movies/"+url.PathEscape(id)+"/rating", payload)
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
		return nil, domain.ErrMovieNotFound
	case http.StatusBadRequest:
		return nil, domain.ErrInvalidRating
	default:
		return nil, fmt.Errorf("%w: catalog returned status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var m domain.Movie
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: decode movie: %v", domain.ErrUpstreamUnavailable, err)
	}
	return &m, nil
}

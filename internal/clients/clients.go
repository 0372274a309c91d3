// Package clients holds the typed HTTP clients for the movie catalog, the
// showtime calendar and the booking ledger. Each operation has a fixed
// request/response contract; a well-formed 404 maps to the entity's sentinel
// error and every other failure maps to domain.ErrUpstreamUnavailable so a
// dependency outage is never mistaken for a validation result.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}

func trimBase(baseURL string) string {
	return strings.TrimRight(baseURL, "/")
}

func newRequest(ctx context.Context, method, url string, payload interface{}) (*http.Request, error) {
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

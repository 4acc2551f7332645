// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

// Package export fetches raw OTLP log export payloads over HTTP.
//
// The client is deliberately thin: one unauthenticated GET, one JSON decode.
// It never retries, the caller re-runs the whole pipeline on failure.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/loglens/loglens/pkg/otel"
)

// Client fetches export payloads from a fixed endpoint.
type Client struct {
	hc   *http.Client
	base *url.URL
}

// New returns a client for the payload endpoint.
// A nil http.Client means [http.DefaultClient].
func New(hc *http.Client, base *url.URL) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{hc: hc, base: base}
}

// Get fetches and decodes one payload.
// A network error, non-2xx response or malformed body is returned as-is,
// missing optional fields inside a well-formed payload are not errors.
func (c *Client) Get(ctx context.Context) (*otel.ExportLogsServiceRequest, error) {
	req := &otel.ExportLogsServiceRequest{}
	if err := get(ctx, c.base, c.hc, req); err != nil {
		return nil, err
	}
	return req, nil
}

// get decodes a REST response into body, which must point to a JSON decodable type.
func get[T any](ctx context.Context, u *url.URL, hc *http.Client, body T) (err error) {
	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return err
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		if b, err := io.ReadAll(resp.Body); err == nil && len(b) > 0 {
			return fmt.Errorf("%v: %v", resp.Status, string(b))
		}
		return fmt.Errorf("%v", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(body)
}

// Package apiclient is a thin HTTP client for a remote TripWise API.
// Every failure (transport, non-2xx status, undecodable body) is logged and
// returned wrapped in ErrFetch. Nothing is retried.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// ErrFetch wraps every error returned by Client.
var ErrFetch = errors.New("fetch failed")

// TripInput is the body of CreateTrip. Dates are YYYY-MM-DD.
type TripInput struct {
	Title       string `json:"title"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Notes       string `json:"notes,omitempty"`
}

// Trip is a trip as returned by the server.
type Trip struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Destination  string `json:"destination"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Notes        string `json:"notes"`
	DurationDays int    `json:"durationDays"`
}

// Client calls a TripWise server at BaseURL.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// New returns a Client for baseURL (e.g. "http://localhost:8080").
// A nil httpClient gets a 10 second timeout.
func New(baseURL string, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient, log: log}
}

// ListDestinations returns the destinations known to the server.
func (c *Client) ListDestinations(ctx context.Context) ([]string, error) {
	var out struct {
		Destinations []string `json:"destinations"`
	}
	if err := c.do(ctx, http.MethodGet, "/destinations", nil, &out); err != nil {
		return nil, err
	}
	if out.Destinations == nil {
		out.Destinations = []string{}
	}
	return out.Destinations, nil
}

// CreateTrip creates a trip on the server and returns it.
func (c *Client) CreateTrip(ctx context.Context, in TripInput) (Trip, error) {
	var out Trip
	if err := c.do(ctx, http.MethodPost, "/trips", in, &out); err != nil {
		return Trip{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	err := c.roundTrip(ctx, method, path, body, result)
	if err != nil {
		c.log.ErrorContext(ctx, "api call failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("apiclient %s %s: %w: %w", method, path, ErrFetch, err)
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.DebugContext(ctx, "api call", "method", method, "url", req.URL.String())

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Error bodies are RFC 7807 problem documents.
		var problem struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(raw, &problem) == nil && problem.Detail != "" {
			return fmt.Errorf("status %d: %s", resp.StatusCode, problem.Detail)
		}
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(raw, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

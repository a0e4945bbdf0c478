package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"gh-wrapped/internal/stats"
)

// Client is the interface for talking to the stats aggregation service.
type Client interface {
	FetchStats(ctx context.Context, username string, year int) (*stats.Report, error)
	RateLimit(ctx context.Context) (*RateLimit, error)
}

// Config holds the connection settings for the stats service.
type Config struct {
	BaseURL string

	// Zero means no client-side timeout; the caller's context governs.
	Timeout time.Duration
}

// Quota is one API rate limit bucket as reported by the service.
type Quota struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"`
}

// RateLimit reports the upstream API quotas the service is working with.
type RateLimit struct {
	Core     Quota `json:"core"`
	GraphQL  Quota `json:"graphql"`
	HasToken bool  `json:"has_token"`
}

type analyzeRequest struct {
	Username string `json:"username"`
	Year     int    `json:"year"`
}

type errorBody struct {
	Error string `json:"error"`
}

type httpClient struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a stats service client.
func NewClient(cfg Config) Client {
	return &httpClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchStats performs exactly one POST to the analyze endpoint. It never retries.
func (c *httpClient) FetchStats(ctx context.Context, username string, year int) (*stats.Report, error) {
	handle := NormalizeUsername(username)
	if handle == "" {
		return nil, &ValidationError{Field: "username", Message: "must not be empty"}
	}

	body, err := json.Marshal(analyzeRequest{Username: handle, Year: year})
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/api/analyze"), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	log.Debug().Str("username", handle).Int("year", year).Msg("Fetching stats")
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &ServiceError{Status: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil {
			se.Message = eb.Error
		}
		log.Debug().Int("status", resp.StatusCode).Str("error", se.Message).Msg("Stats service rejected request")
		return nil, se
	}

	report, err := stats.Decode(data)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if report.Username == "" {
		report.Username = handle
	}

	log.Debug().
		Str("username", handle).
		Dur("elapsed", time.Since(start)).
		Bool("fromCache", report.FromCache).
		Msg("Stats fetched")
	return report, nil
}

// RateLimit reads the service's view of the upstream API quotas.
func (c *httpClient) RateLimit(ctx context.Context) (*RateLimit, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/api/rate-limit"), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		se := &ServiceError{Status: resp.StatusCode}
		var eb errorBody
		if json.NewDecoder(resp.Body).Decode(&eb) == nil {
			se.Message = eb.Error
		}
		return nil, se
	}

	var rl RateLimit
	if err := json.NewDecoder(resp.Body).Decode(&rl); err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("decoding rate limit: %w", err)}
	}
	return &rl, nil
}

func (c *httpClient) endpoint(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

var profileURLPattern = regexp.MustCompile(`github\.com/([a-zA-Z0-9_-]+)`)

// NormalizeUsername trims the input and extracts the handle from a profile URL.
// Anything else is passed through trimmed; the service validates it.
func NormalizeUsername(input string) string {
	s := strings.TrimSpace(input)
	if m := profileURLPattern.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}

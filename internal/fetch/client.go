// Package fetch talks to adventofcode.com. The session cookie is the sole
// credential; there are no automatic retries, so every network failure is the
// caller's to see.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"aocbench/internal/domain"
)

// DefaultBaseURL is the live puzzle site. Tests point BaseURL at an
// httptest server instead.
const DefaultBaseURL = domain.CanonicalBaseURL

// Config holds the settings for a Client.
type Config struct {
	// Session is the adventofcode.com session cookie value.
	Session string

	// BaseURL overrides the puzzle site root. Defaults to DefaultBaseURL.
	BaseURL string

	// Throttle, when set, spaces out requests. Bulk helpers set it;
	// interactive single-puzzle fetches leave it nil.
	Throttle *Throttle

	// HTTPClient overrides the HTTP client. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	Logger *slog.Logger
}

// Client issues authenticated GET/POST requests against the puzzle site.
type Client struct {
	base     string
	session  string
	throttle *Throttle
	http     *http.Client
	logger   *slog.Logger
}

// NewClient creates a Client from cfg, filling in defaults.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		base:     strings.TrimRight(base, "/"),
		session:  cfg.Session,
		throttle: cfg.Throttle,
		http:     httpClient,
		logger:   logger,
	}
}

// PuzzleHTML fetches the puzzle page for (year, day).
func (c *Client) PuzzleHTML(ctx context.Context, year, day int) (string, error) {
	return c.get(ctx, domain.PuzzleURL(c.base, year, day))
}

// InputText fetches the raw puzzle input for (year, day).
func (c *Client) InputText(ctx context.Context, year, day int) (string, error) {
	return c.get(ctx, domain.PuzzleURL(c.base, year, day)+"/input")
}

// SubmitAnswer posts an answer for (year, day, level) and returns the
// response body verbatim.
func (c *Client) SubmitAnswer(ctx context.Context, year, day, level int, answer string) (string, error) {
	form := url.Values{}
	form.Set("level", strconv.Itoa(level))
	form.Set("answer", answer)

	endpoint := domain.PuzzleURL(c.base, year, day) + "/answer"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.Info("submitting answer", "year", year, "day", day, "level", level)
	return c.do(req)
}

func (c *Client) get(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	c.logger.Debug("fetching", "url", endpoint)
	return c.do(req)
}

func (c *Client) do(req *http.Request) (string, error) {
	if c.session == "" {
		return "", domain.ErrMissingSession
	}
	if c.throttle != nil {
		if err := c.throttle.Wait(req.Context()); err != nil {
			return "", err
		}
	}

	req.AddCookie(&http.Cookie{Name: "session", Value: c.session})

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}
	return string(body), nil
}

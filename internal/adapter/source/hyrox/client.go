// Package hyrox is the client for the public HYROX results site.
// It turns the site's AJAX listings and ranking pages into plain domain
// records; it does not classify or persist anything.
package hyrox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/heartmarshall/hyrox-results/internal/config"
	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// maxBodyBytes caps how much of a response is read; ranking pages are well below it.
const maxBodyBytes = 16 << 20

// Client fetches listings and result pages from the results site.
type Client struct {
	baseURL     string
	lang        string
	userAgent   string
	maxAttempts int
	retryDelay  time.Duration
	httpClient  *http.Client
	log         *slog.Logger
}

// NewClient creates a Client from SourceConfig.
func NewClient(cfg config.SourceConfig, logger *slog.Logger) *Client {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	lang := cfg.Language
	if lang == "" {
		lang = "EN_CAP"
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		lang:        lang,
		userAgent:   cfg.UserAgent,
		maxAttempts: attempts,
		retryDelay:  cfg.RetryDelay,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		log:         logger.With("adapter", "hyrox"),
	}
}

func (c *Client) seasonURL(season int) string {
	return fmt.Sprintf("%s/season-%d/", c.baseURL, season)
}

// get issues a GET request with query parameters and returns the body.
func (c *Client) get(ctx context.Context, rawURL string, query url.Values) ([]byte, error) {
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}
	return c.do(ctx, rawURL, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	})
}

// postForm issues a form POST and returns the body.
func (c *Client) postForm(ctx context.Context, rawURL string, form url.Values) ([]byte, error) {
	encoded := form.Encode()
	return c.do(ctx, rawURL, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(encoded))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	})
}

// do runs one logical request with bounded retries at a constant delay.
// Network errors, timeouts and 5xx are retried and end up wrapping
// domain.ErrTransientSource; 4xx responses abort at once with
// domain.ErrPermanentSource.
func (c *Client) do(ctx context.Context, rawURL string, newReq func() (*http.Request, error)) ([]byte, error) {
	attempt := 0
	op := func() ([]byte, error) {
		attempt++

		req, err := newReq()
		if err != nil {
			return nil, backoff.Permanent(fmt.Errorf("hyrox: create request: %w: %w", domain.ErrPermanentSource, err))
		}
		if c.userAgent != "" {
			req.Header.Set("User-Agent", c.userAgent)
		}

		c.log.DebugContext(ctx, "hyrox request",
			slog.String("method", req.Method),
			slog.String("url", rawURL),
			slog.Int("attempt", attempt),
		)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			return nil, fmt.Errorf("hyrox: %s: %w: %w", describeNetErr(err), domain.ErrTransientSource, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return nil, fmt.Errorf("hyrox: read body: %w: %w", domain.ErrTransientSource, err)
		}

		switch {
		case resp.StatusCode >= 500:
			return nil, fmt.Errorf("hyrox: status %d: %w", resp.StatusCode, domain.ErrTransientSource)
		case resp.StatusCode >= 400:
			return nil, backoff.Permanent(fmt.Errorf("hyrox: status %d: %w", resp.StatusCode, domain.ErrPermanentSource))
		case resp.StatusCode != http.StatusOK:
			return nil, backoff.Permanent(fmt.Errorf("hyrox: unexpected status %d: %w", resp.StatusCode, domain.ErrPermanentSource))
		}
		return body, nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryDelay), uint64(c.maxAttempts-1)),
		ctx,
	)
	notify := func(err error, wait time.Duration) {
		c.log.WarnContext(ctx, "hyrox retry",
			slog.String("url", rawURL),
			slog.String("reason", err.Error()),
			slog.Duration("wait", wait),
		)
	}

	body, err := backoff.RetryNotifyWithData(op, policy, notify)
	if err != nil {
		c.log.ErrorContext(ctx, "hyrox request failed",
			slog.String("url", rawURL),
			slog.Int("attempts", attempt),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return body, nil
}

func describeNetErr(err error) string {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}
	return "network error"
}

// decodeErr marks a payload the client could not make sense of.
func decodeErr(what string, err error) error {
	return fmt.Errorf("hyrox: decode %s: %w: %w", what, domain.ErrPermanentSource, err)
}

var seasonRe = regexp.MustCompile(`season-(\d+)`)

// seasonNumber extracts N from any string containing "season-N".
func seasonNumber(s string) (int, bool) {
	m := seasonRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/plainread/plainread/pkg/types"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

const (
	defaultFetchTimeout = 30 * time.Second
	defaultMaxRetries   = 3
	defaultUserAgent    = "plainread/1.0"
	maxFetchBytes       = 10 << 20
)

// FromURL fetches a web page and runs it through the HTML adapter. Rate
// limiting (HTTP 429) is retried with exponential backoff; other non-2xx
// statuses fail immediately.
func FromURL(ctx context.Context, url string, cfg types.IngestConfig) (Source, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Source{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := doWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return Source{}, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Source{}, fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return Source{}, fmt.Errorf("reading %s: %w", url, err)
	}

	text, err := ExtractHTML(string(body))
	if err != nil {
		return Source{}, fmt.Errorf("extracting %s: %w", url, err)
	}

	src := Source{Name: url, Kind: types.SourceURL, Text: text}
	if err := validate(src.Text, cfg); err != nil {
		return Source{}, fmt.Errorf("%s: %w", url, err)
	}
	return src, nil
}

// doWithRetry executes a request and retries on HTTP 429 with exponential
// backoff starting at RetryBaseDelay. The body of each 429 is drained and
// closed before sleeping; a context cancellation during the wait returns
// ctx.Err(). After exhausting retries the last 429 response is returned so
// the caller can inspect it.
func doWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		if attempt >= maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// Package fetch implements the polite fetcher: rate-limited, retrying
// retrieval of pages from the legislation publication endpoint.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/domain"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/ports/driven"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/logger"
)

// Ensure Fetcher implements the driven port.
var _ driven.Fetcher = (*Fetcher)(nil)

const (
	// UserAgent identifies this client to the publication endpoint.
	UserAgent = "ghana-law-mcp/1.0 (legislation corpus builder)"

	// minSpacing is the minimum delay between requests, measured from the
	// end of the previous request. One global clock, not per host.
	minSpacing = 500 * time.Millisecond

	// maxRetries bounds the retry loop for 429 and 5xx responses.
	maxRetries = 3

	// proactiveRate caps the sustained request rate on top of the
	// spacing clock.
	proactiveRate = 2.0
)

// sleepFunc is replaced in tests to avoid real backoff delays.
var sleepFunc = sleepCtx

// Fetcher retrieves pages with a global politeness throttle and bounded
// retry-with-backoff. A single Fetcher is shared by the whole pipeline;
// the throttle state lives for the process and is never persisted.
type Fetcher struct {
	client *http.Client
	bucket *rate.Limiter

	// mu guards lastDone, the end time of the previous request.
	mu       sync.Mutex
	lastDone time.Time
}

// New creates a fetcher with the given per-request timeout.
func New(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		bucket: rate.NewLimiter(rate.Limit(proactiveRate), 1),
	}
}

// Fetch retrieves one URL. HTTP 429 and 5xx are retried up to maxRetries
// times with 1 s, 2 s, 4 s backoff; exhausting the retries is fatal for
// the URL. Any other status, 404 included, is returned immediately in
// the result and left to the caller to interpret.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*driven.FetchResult, error) {
	var last *driven.FetchResult

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<(attempt-1)) * time.Second
			logger.Debug("retry %d for %s after %s", attempt, url, backoff)
			if err := sleepFunc(ctx, backoff); err != nil {
				return nil, err
			}
		}

		res, err := f.doFetch(ctx, url)
		if err != nil {
			return nil, err
		}

		if !retryable(res.Status) {
			return res, nil
		}
		last = res
	}

	return nil, fmt.Errorf("%w: %s last status %d", domain.ErrFetchExhausted, url, last.Status)
}

// doFetch performs a single throttled request.
func (f *Fetcher) doFetch(ctx context.Context, url string) (*driven.FetchResult, error) {
	if err := f.waitTurn(ctx); err != nil {
		return nil, err
	}
	defer f.markDone()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	res := &driven.FetchResult{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("reading body of %s: %w", url, err)
		}
		res.Body = string(body)
	}

	return res, nil
}

// waitTurn blocks until both the proactive bucket and the spacing clock
// allow the next request.
func (f *Fetcher) waitTurn(ctx context.Context) error {
	if err := f.bucket.Wait(ctx); err != nil {
		return err
	}

	f.mu.Lock()
	wait := minSpacing - time.Since(f.lastDone)
	f.mu.Unlock()

	if wait > 0 {
		return sleepFunc(ctx, wait)
	}
	return nil
}

// markDone records the end of a request on the global spacing clock.
func (f *Fetcher) markDone() {
	f.mu.Lock()
	f.lastDone = time.Now()
	f.mu.Unlock()
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

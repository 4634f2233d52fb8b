package driven

import "context"

// FetchResult is the outcome of one page retrieval.
type FetchResult struct {
	// Status is the final HTTP status code.
	Status int

	// Body is the page content. Empty for non-2xx statuses.
	Body string

	// ContentType is the response content type header.
	ContentType string
}

// Fetcher retrieves pages from the publication endpoint. Implementations
// own the politeness policy: global request spacing and bounded
// retry-with-backoff on transient server errors. Fetch fails only after
// exhausting its retries; non-retryable statuses (including 404) are
// returned immediately in the result, not as errors.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

package prezzario

import "context"

// Fetcher retrieves raw text bodies from remote URLs.
// Implementations route requests through a download proxy so that remote
// hosts without CORS or TLS guarantees can still be reached.
type Fetcher interface {
	// Fetch downloads the URL and returns the body as UTF-8 text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (string, error)
}

package snapshot

import "context"

// Fetcher loads the static snapshot document.
type Fetcher interface {
	Fetch(ctx context.Context) (Document, error)
}

package backend

import "context"

// Client defines the interface for reading matches, courts and groups from the
// live backend. This allows for mock implementations to be used in tests.
type Client interface {
	FetchAll(ctx context.Context) (Result, error)
	FetchGroups(ctx context.Context) ([]FbGroup, error)
}

package snapshot

import (
	"context"
	"sync"
)

// MockFetcher is a mock implementation of the Fetcher interface for testing.
// It is safe for concurrent use.
type MockFetcher struct {
	mu sync.Mutex

	FetchFunc  func(ctx context.Context) (Document, error)
	FetchCalls int
}

// NewMockFetcher creates a new mock instance.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{}
}

func (m *MockFetcher) Fetch(ctx context.Context) (Document, error) {
	m.mu.Lock()
	m.FetchCalls++
	fn := m.FetchFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return Document{}, nil
}

package backend

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the Client interface for testing.
// It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	FetchAllFunc    func(ctx context.Context) (Result, error)
	FetchGroupsFunc func(ctx context.Context) ([]FbGroup, error)

	// Call records
	FetchAllCalls    int
	FetchGroupsCalls int
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchAllCalls = 0
	m.FetchGroupsCalls = 0
}

func (m *MockClient) FetchAll(ctx context.Context) (Result, error) {
	m.mu.Lock()
	m.FetchAllCalls++
	fn := m.FetchAllFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return Result{Groups: map[string]FbGroup{}}, nil
}

func (m *MockClient) FetchGroups(ctx context.Context) ([]FbGroup, error) {
	m.mu.Lock()
	m.FetchGroupsCalls++
	fn := m.FetchGroupsFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return []FbGroup{}, nil
}

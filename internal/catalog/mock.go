package catalog

import (
	"sync"

	"github.com/mauv0809/court-finder/internal/backend"
	"github.com/mauv0809/court-finder/internal/source"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CurrentFunc    func() source.Selection
	GenerationFunc func() (Generation, bool)
	StatusFunc     func() Status
	GroupsFunc     func() []backend.FbGroup

	// Call records
	ReplaceCalls    []Generation
	SetLoadingCalls []bool
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

var _ Store = (*MockStore)(nil)

func (m *MockStore) Replace(gen Generation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceCalls = append(m.ReplaceCalls, gen)
}

func (m *MockStore) Current() source.Selection {
	m.mu.Lock()
	fn := m.CurrentFunc
	m.mu.Unlock()
	if fn != nil {
		return fn()
	}
	return source.Selection{Name: source.Mock}
}

func (m *MockStore) Generation() (Generation, bool) {
	m.mu.Lock()
	fn := m.GenerationFunc
	m.mu.Unlock()
	if fn != nil {
		return fn()
	}
	return Generation{}, false
}

func (m *MockStore) Status() Status {
	m.mu.Lock()
	fn := m.StatusFunc
	m.mu.Unlock()
	if fn != nil {
		return fn()
	}
	return Status{}
}

func (m *MockStore) Groups() []backend.FbGroup {
	m.mu.Lock()
	fn := m.GroupsFunc
	m.mu.Unlock()
	if fn != nil {
		return fn()
	}
	return []backend.FbGroup{}
}

func (m *MockStore) SetLoading(loading bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetLoadingCalls = append(m.SetLoadingCalls, loading)
}

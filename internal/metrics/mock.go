package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	loads            int
	sourceFailures   map[string]int
	backendFallbacks int
	selectedSource   string
	qualityDrops     map[string]int
	loadDurations    []float64
	filterDurations  []float64
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		sourceFailures:  make(map[string]int),
		qualityDrops:    make(map[string]int),
		loadDurations:   make([]float64, 0),
		filterDurations: make([]float64, 0),
	}
}

var _ Metrics = (*Mock)(nil)

func (m *Mock) IncLoads() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
}

func (m *Mock) IncSourceFailure(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sourceFailures[source]++
}

func (m *Mock) IncBackendFallback() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.backendFallbacks++
}

func (m *Mock) SetSelectedSource(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectedSource = source
}

func (m *Mock) AddQualityDrops(source string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.qualityDrops[source] += n
}

func (m *Mock) ObserveLoadDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadDurations = append(m.loadDurations, duration)
}

func (m *Mock) ObserveFilterDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filterDurations = append(m.filterDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Loads returns the number of times IncLoads was called.
func (m *Mock) Loads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}

// SourceFailures returns the number of failures recorded for source.
func (m *Mock) SourceFailures(source string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sourceFailures[source]
}

// BackendFallbacks returns the number of times IncBackendFallback was called.
func (m *Mock) BackendFallbacks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.backendFallbacks
}

// SelectedSource returns the last value passed to SetSelectedSource.
func (m *Mock) SelectedSource() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selectedSource
}

// QualityDrops returns the dropped slot count recorded for source.
func (m *Mock) QualityDrops(source string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.qualityDrops[source]
}

// LoadDurations returns every observed load duration.
func (m *Mock) LoadDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.loadDurations...)
}

// FilterDurations returns every observed filter duration.
func (m *Mock) FilterDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.filterDurations...)
}

// StartupTime returns the last value passed to SetStartupTime.
func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}

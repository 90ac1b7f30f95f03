package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncLoads()
	IncSourceFailure(source string)
	IncBackendFallback()
	SetSelectedSource(source string)
	AddQualityDrops(source string, n int)
	ObserveLoadDuration(duration float64)
	ObserveFilterDuration(duration float64)
	SetStartupTime(duration float64)
}

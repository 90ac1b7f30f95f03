package metrics

import "github.com/prometheus/client_golang/prometheus"

// Sources is every value of the source label.
var Sources = []string{"backend", "snapshot", "mock"}

// Service holds all the Prometheus metrics for the application.
type Service struct {
	Loads              prometheus.Counter
	SourceFailures     *prometheus.CounterVec
	BackendFallbacks   prometheus.Counter
	SelectedSource     *prometheus.GaugeVec
	QualityDrops       *prometheus.CounterVec
	LoadDuration       prometheus.Histogram
	FilterDuration     prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}

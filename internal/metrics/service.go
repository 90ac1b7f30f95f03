package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Loads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "court_finder_loads_total",
			Help: "The total number of load cycles run.",
		}),
		SourceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "court_finder_source_failures_total",
			Help: "The total number of failed fetches, by source.",
		}, []string{"source"}),
		BackendFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "court_finder_backend_fallbacks_total",
			Help: "The total number of times the joined backend endpoint failed and the separate endpoints served the data.",
		}),
		SelectedSource: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "court_finder_selected_source",
			Help: "1 for the source whose slots are currently served, 0 otherwise.",
		}, []string{"source"}),
		QualityDrops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "court_finder_quality_dropped_slots_total",
			Help: "The total number of slots dropped for missing name or time, by source.",
		}, []string{"source"}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "court_finder_load_duration_seconds",
			Help:    "The duration of a full load cycle.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15, 30},
		}),
		FilterDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "court_finder_filter_duration_seconds",
			Help:    "The duration of one filter and sort pass.",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "court_finder_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Loads,
		s.SourceFailures,
		s.BackendFallbacks,
		s.SelectedSource,
		s.QualityDrops,
		s.LoadDuration,
		s.FilterDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncLoads() {
	s.Loads.Inc()
}

func (s *Service) IncSourceFailure(source string) {
	s.SourceFailures.WithLabelValues(source).Inc()
}

func (s *Service) IncBackendFallback() {
	s.BackendFallbacks.Inc()
}

// SetSelectedSource sets the gauge of source to 1 and every other source to 0.
func (s *Service) SetSelectedSource(source string) {
	for _, name := range Sources {
		v := 0.0
		if name == source {
			v = 1
		}
		s.SelectedSource.WithLabelValues(name).Set(v)
	}
}

func (s *Service) AddQualityDrops(source string, n int) {
	if n <= 0 {
		return
	}
	s.QualityDrops.WithLabelValues(source).Add(float64(n))
}

func (s *Service) ObserveLoadDuration(duration float64) {
	s.LoadDuration.Observe(duration)
}

func (s *Service) ObserveFilterDuration(duration float64) {
	s.FilterDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}

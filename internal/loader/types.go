package loader

import (
	"sync"
	"time"

	"github.com/mauv0809/court-finder/internal/backend"
	"github.com/mauv0809/court-finder/internal/catalog"
	"github.com/mauv0809/court-finder/internal/metrics"
	"github.com/mauv0809/court-finder/internal/snapshot"
)

// Loader runs load cycles: fetch every source, transform, gate and store.
type Loader struct {
	backend  backend.Client
	snapshot snapshot.Fetcher
	store    catalog.Store
	metrics  metrics.Metrics
	timeout  time.Duration

	// mu serializes load cycles.
	mu  sync.Mutex
	now func() time.Time
}

// Package loader fetches every data source concurrently and publishes the result
// as a new catalog generation.
package loader

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/court-finder/internal/backend"
	"github.com/mauv0809/court-finder/internal/catalog"
	"github.com/mauv0809/court-finder/internal/metrics"
	"github.com/mauv0809/court-finder/internal/slot"
	"github.com/mauv0809/court-finder/internal/snapshot"
	"github.com/mauv0809/court-finder/internal/source"
	"golang.org/x/sync/errgroup"
)

// New creates a Loader. A nil backend client disables the backend source.
func New(b backend.Client, s snapshot.Fetcher, store catalog.Store, m metrics.Metrics, timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = snapshot.DefaultTimeout
	}
	return &Loader{
		backend:  b,
		snapshot: s,
		store:    store,
		metrics:  m,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Load runs one cycle and stores its generation. Source failures are recorded in
// the generation and never returned: the backend as a warning, the snapshot as a
// blocking error.
func (l *Loader) Load(ctx context.Context) catalog.Generation {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := l.now()
	l.store.SetLoading(true)
	defer l.store.SetLoading(false)
	l.metrics.IncLoads()

	gen := catalog.Generation{
		ID:   uuid.NewString(),
		Mock: source.MockSlots(),
	}
	log.Info("Starting load cycle", "generation", gen.ID)

	// Both sources race independently; neither goroutine returns an error so one
	// failure never cancels the other.
	var g errgroup.Group
	var backendDropped, snapshotDropped int
	g.Go(func() error {
		backendDropped = l.loadBackend(ctx, &gen)
		return nil
	})
	g.Go(func() error {
		snapshotDropped = l.loadSnapshot(ctx, &gen)
		return nil
	})
	_ = g.Wait()
	gen.Dropped = backendDropped + snapshotDropped

	gen.LoadedAt = l.now()
	l.store.Replace(gen)

	selected := l.store.Current().Name
	l.metrics.SetSelectedSource(string(selected))
	l.metrics.ObserveLoadDuration(time.Since(start).Seconds())
	log.Info("Load cycle finished",
		"generation", gen.ID,
		"source", selected,
		"backend", len(gen.Backend),
		"snapshot", len(gen.Snapshot),
		"dropped", gen.Dropped,
		"duration", time.Since(start))
	return gen
}

// loadBackend and loadSnapshot write disjoint fields of gen and return the number
// of slots the quality gate dropped.
func (l *Loader) loadBackend(ctx context.Context, gen *catalog.Generation) int {
	if l.backend == nil {
		log.Debug("Backend source disabled")
		return 0
	}

	res, err := l.backend.FetchAll(ctx)
	if err != nil {
		log.Warn("Backend source unavailable, continuing without it", "error", err)
		l.metrics.IncSourceFailure(string(source.Backend))
		gen.BackendWarning = err.Error()
		return 0
	}
	if !res.Joined {
		l.metrics.IncBackendFallback()
	}

	groups := l.fetchGroups(ctx, res.Groups)

	courts := res.CourtsByID()
	slots := make([]slot.Slot, 0, len(res.Matches))
	for _, m := range res.Matches {
		var court *backend.Court
		if m.CourtID != nil {
			court = courts[*m.CourtID]
		}
		slots = append(slots, slot.FromBackend(m, court, groups))
	}

	kept, dropped := slot.QualityGate(slots)
	l.metrics.AddQualityDrops(string(source.Backend), dropped)
	gen.Backend = kept
	gen.Groups = groups
	gen.BackendJoined = res.Joined
	return dropped
}

// fetchGroups lists every known group, keyed by external id. The joined payload
// only carries groups some match references, so it is merged in underneath the
// full listing. A failed listing leaves just the joined groups.
func (l *Loader) fetchGroups(ctx context.Context, joined map[string]backend.FbGroup) map[string]backend.FbGroup {
	groups := make(map[string]backend.FbGroup, len(joined))
	for id, g := range joined {
		groups[id] = g
	}

	list, err := l.backend.FetchGroups(ctx)
	if err != nil {
		log.Warn("Failed to fetch community groups", "error", err)
		return groups
	}
	for _, g := range list {
		groups[g.FbGroupID] = g
	}
	return groups
}

func (l *Loader) loadSnapshot(ctx context.Context, gen *catalog.Generation) int {
	if l.snapshot == nil {
		gen.SnapshotError = snapshot.ErrSnapshot.Error() + ": no snapshot source configured"
		return 0
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	doc, err := l.snapshot.Fetch(ctx)
	if err != nil {
		log.Error("Snapshot source unavailable", "error", err)
		l.metrics.IncSourceFailure(string(source.Snapshot))
		gen.SnapshotError = err.Error()
		return 0
	}

	courts := doc.CourtsByID()
	slots := make([]slot.Slot, 0, len(doc.Matches))
	for _, m := range doc.Matches {
		slots = append(slots, slot.FromSnapshot(m, courts[m.CourtID]))
	}

	kept, dropped := slot.QualityGate(slots)
	l.metrics.AddQualityDrops(string(source.Snapshot), dropped)
	gen.Snapshot = kept
	gen.SnapshotMeta = doc.Metadata
	return dropped
}

// Run loads immediately and then every interval until ctx is done. A zero interval
// loads once.
func (l *Loader) Run(ctx context.Context, interval time.Duration) {
	l.Load(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping periodic refresh")
			return
		case <-ticker.C:
			l.Load(ctx)
		}
	}
}

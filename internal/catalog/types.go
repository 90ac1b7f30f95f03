package catalog

import (
	"sync"
	"time"

	"github.com/mauv0809/court-finder/internal/backend"
	"github.com/mauv0809/court-finder/internal/slot"
	"github.com/mauv0809/court-finder/internal/snapshot"
	"github.com/mauv0809/court-finder/internal/source"
)

// store keeps one generation in memory.
type store struct {
	mu        sync.RWMutex
	gen       *Generation
	selection source.Selection
	loading   bool
}

// Generation is the result of one load cycle. It is immutable once stored.
type Generation struct {
	ID       string
	LoadedAt time.Time

	Backend  []slot.Slot
	Snapshot []slot.Slot
	Mock     []slot.Slot

	// Groups is keyed by the external group id.
	Groups        map[string]backend.FbGroup
	BackendJoined bool
	SnapshotMeta  snapshot.Metadata

	// BackendWarning is set when the backend could not be reached. It never blocks.
	BackendWarning string
	// SnapshotError is set when the snapshot could not be loaded. It blocks.
	SnapshotError string
	// Dropped counts slots removed by the quality gate, across sources.
	Dropped int
}

// Status summarizes the load state for clients.
type Status struct {
	Loading        bool              `json:"loading" msgpack:"loading"`
	Generation     string            `json:"generation" msgpack:"generation"`
	LoadedAt       *time.Time        `json:"loadedAt" msgpack:"loadedAt"`
	Source         source.Name       `json:"source" msgpack:"source"`
	Count          int               `json:"count" msgpack:"count"`
	BackendJoined  bool              `json:"backendJoined" msgpack:"backendJoined"`
	BackendWarning string            `json:"backendWarning,omitempty" msgpack:"backendWarning,omitempty"`
	SnapshotError  string            `json:"snapshotError,omitempty" msgpack:"snapshotError,omitempty"`
	Blocking       bool              `json:"blocking" msgpack:"blocking"`
	Dropped        int               `json:"dropped" msgpack:"dropped"`
	Snapshot       snapshot.Metadata `json:"snapshot" msgpack:"snapshot"`
}

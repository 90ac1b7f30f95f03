// Package catalog keeps the slots of the latest load cycle in memory and answers
// which list the views should render.
package catalog

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/court-finder/internal/backend"
	"github.com/mauv0809/court-finder/internal/source"
)

// New creates an empty Store. Until the first Replace the mock dataset is served.
func New() Store {
	return &store{
		selection: source.SelectSource(nil, nil, source.MockSlots()),
	}
}

var _ Store = (*store)(nil)

func (s *store) Replace(gen Generation) {
	selection := source.SelectSource(gen.Backend, gen.Snapshot, gen.Mock)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen = &gen
	s.selection = selection
	log.Info("Replaced catalog generation", "generation", gen.ID, "source", selection.Name, "count", len(selection.Slots))
}

func (s *store) Current() source.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

func (s *store) Generation() (Generation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.gen == nil {
		return Generation{}, false
	}
	return *s.gen, true
}

func (s *store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Status{
		Loading: s.loading,
		Source:  s.selection.Name,
		Count:   len(s.selection.Slots),
	}
	if s.gen != nil {
		loadedAt := s.gen.LoadedAt
		st.Generation = s.gen.ID
		st.LoadedAt = &loadedAt
		st.BackendJoined = s.gen.BackendJoined
		st.BackendWarning = s.gen.BackendWarning
		st.SnapshotError = s.gen.SnapshotError
		st.Blocking = s.gen.SnapshotError != ""
		st.Dropped = s.gen.Dropped
		st.Snapshot = s.gen.SnapshotMeta
	}
	return st
}

// Groups returns the active groups sorted by name. A group without a URL gets the
// public group page of its external id.
func (s *store) Groups() []backend.FbGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.gen == nil {
		return []backend.FbGroup{}
	}

	out := make([]backend.FbGroup, 0, len(s.gen.Groups))
	for _, g := range s.gen.Groups {
		if !g.IsActive {
			continue
		}
		if g.URL == nil || strings.TrimSpace(*g.URL) == "" {
			url := GroupURL(g.FbGroupID)
			g.URL = &url
		}
		out = append(out, g)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return groupName(out[i]) < groupName(out[j])
	})
	return out
}

func (s *store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

// GroupURL is the public page of a community group.
func GroupURL(fbGroupID string) string {
	return "https://www.facebook.com/groups/" + fbGroupID
}

func groupName(g backend.FbGroup) string {
	if g.Name == nil {
		return g.FbGroupID
	}
	return *g.Name
}

// Package selection holds the single active slot id shared by the list, map and
// carousel views, and tells observers when it changes.
package selection

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type subscriber struct {
	id string
	fn func(Change)
}

// State is the shared selection. The zero value is not usable; use New.
type State struct {
	// writeMu serializes writes so subscribers see changes in write order.
	writeMu sync.Mutex

	mu     sync.RWMutex
	active string
	set    bool
	view   View
	subs   []subscriber
}

// New returns a State with nothing selected and the list view mounted.
func New() *State {
	return &State{view: ViewList}
}

// Active returns the active slot id. Every view reads the same value.
func (s *State) Active() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active, s.set
}

// IsActive reports whether id is the active slot.
func (s *State) IsActive(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set && s.active == id
}

// View returns the mounted view.
func (s *State) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// SetView records a layout switch. The active slot is kept.
func (s *State) SetView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = v
}

// PinClick selects id from a map marker.
func (s *State) PinClick(id string) { s.Select(id, OriginPinClick) }

// CardEnter selects id while the pointer hovers its card.
func (s *State) CardEnter(id string) { s.Select(id, OriginCardEnter) }

// CardClick selects id from a list or carousel card.
func (s *State) CardClick(id string) { s.Select(id, OriginCardClick) }

// Focus selects id programmatically, e.g. after a search.
func (s *State) Focus(id string) { s.Select(id, OriginSearch) }

// CardLeave clears the selection when the pointer leaves a card.
func (s *State) CardLeave() { s.Clear(OriginCardLeave) }

// PopupClose clears the selection when the map popup is closed.
func (s *State) PopupClose() { s.Clear(OriginPopupClose) }

// Select makes id the active slot. An empty id clears the selection.
func (s *State) Select(id string, origin Origin) {
	if id == "" {
		s.Clear(origin)
		return
	}
	s.write(id, true, origin)
}

// Clear drops the active slot.
func (s *State) Clear(origin Origin) {
	s.write("", false, origin)
}

func (s *State) write(id string, set bool, origin Origin) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if s.set == set && s.active == id {
		s.mu.Unlock()
		return
	}
	s.active, s.set = id, set
	change := Change{ID: id, Active: set, Origin: origin, View: s.view, Effects: EffectsFor(s.view, id)}
	subs := append([]subscriber(nil), s.subs...)
	s.mu.Unlock()

	log.Debug("Selection changed", "id", id, "active", set, "origin", origin, "view", change.View)
	for _, sub := range subs {
		sub.fn(change)
	}
}

// Subscribe registers fn for every future change. Callbacks run synchronously in
// subscription order and must not write to the State. The returned function
// removes the subscription; calling it twice is harmless.
func (s *State) Subscribe(fn func(Change)) func() {
	id := uuid.NewString()

	s.mu.Lock()
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of registered subscribers.
func (s *State) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

// EffectsFor returns what the views mounted in view do when id becomes active.
// An empty id has no effects.
func EffectsFor(view View, id string) Effects {
	if id == "" {
		return Effects{}
	}
	return Effects{
		HighlightCard:  true,
		ScrollListCard: view == ViewSplit,
		PanMap:         view == ViewSplit || view == ViewMap,
		OpenPopup:      view == ViewSplit || view == ViewMap,
		CenterCarousel: view == ViewMap,
	}
}

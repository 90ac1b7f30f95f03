// Package source picks the slot list shown to users from the available data
// sources and holds the built-in demo dataset.
package source

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/court-finder/internal/slot"
)

// Select returns the first provider with at least one slot, in the given order.
// When every provider is empty the last one is returned as is.
func Select(providers ...Provider) Selection {
	if len(providers) == 0 {
		return Selection{Name: Mock}
	}
	for _, p := range providers {
		if len(p.Slots) > 0 {
			log.Debug("Selected slot source", "source", p.Name, "count", len(p.Slots))
			return Selection{Name: p.Name, Slots: p.Slots}
		}
	}
	last := providers[len(providers)-1]
	log.Debug("Every slot source is empty", "fallback", last.Name)
	return Selection{Name: last.Name, Slots: last.Slots}
}

// SelectSource applies the fixed priority backend, then snapshot, then mock.
// Lists are never merged: the first non-empty one wins outright.
func SelectSource(backend, snapshot, mock []slot.Slot) Selection {
	return Select(
		Provider{Name: Backend, Slots: backend},
		Provider{Name: Snapshot, Slots: snapshot},
		Provider{Name: Mock, Slots: mock},
	)
}

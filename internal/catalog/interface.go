package catalog

import (
	"github.com/mauv0809/court-finder/internal/backend"
	"github.com/mauv0809/court-finder/internal/source"
)

// Store holds the current data-load generation and the selection derived from it.
type Store interface {
	// Replace swaps in a new generation wholesale and re-runs source selection.
	Replace(gen Generation)
	Current() source.Selection
	Generation() (Generation, bool)
	Status() Status
	// Groups returns the active community groups of the current generation.
	Groups() []backend.FbGroup
	SetLoading(loading bool)
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/court-finder/internal/catalog"
	"github.com/mauv0809/court-finder/internal/filter"
	"github.com/mauv0809/court-finder/internal/metrics"
	"github.com/mauv0809/court-finder/internal/slot"
	"github.com/mauv0809/court-finder/internal/source"
)

// SlotsResponse is the filtered list every view renders.
type SlotsResponse struct {
	Source   source.Name     `json:"source"`
	Count    int             `json:"count"`
	Empty    bool            `json:"empty"`
	Criteria filter.Criteria `json:"criteria"`
	// Cleared is the criteria the "clear filters" action would apply. Only set
	// when nothing matched.
	Cleared *filter.Criteria `json:"cleared,omitempty"`
	Slots   []slot.Slot      `json:"slots"`
}

// ListSlotsHandler filters and sorts the current selection with the criteria in
// the query string. A query naming city filters nothing. No match is a normal,
// empty answer.
func ListSlotsHandler(store catalog.Store, metrics metrics.Metrics, city string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, err := filter.ParseQuery(r.URL.Query())
		if err != nil {
			log.Warn("Rejected slot query", "error", err, "query", r.URL.RawQuery)
			status := http.StatusInternalServerError
			if errors.Is(err, filter.ErrInvalidCriteria) {
				status = http.StatusBadRequest
			}
			http.Error(w, err.Error(), status)
			return
		}
		criteria.City = city

		current := store.Current()
		start := time.Now()
		slots := filter.Apply(current.Slots, criteria)
		metrics.ObserveFilterDuration(time.Since(start).Seconds())

		resp := SlotsResponse{
			Source:   current.Name,
			Count:    len(slots),
			Empty:    len(slots) == 0,
			Criteria: criteria,
			Slots:    slots,
		}
		if resp.Empty {
			cleared := criteria.Cleared()
			resp.Cleared = &cleared
		}
		log.Debug("Listed slots", "source", current.Name, "total", len(current.Slots), "matched", len(slots))
		respond(w, r, http.StatusOK, resp)
	}
}

// GetSlotHandler returns one slot of the current selection by id.
func GetSlotHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		for _, s := range store.Current().Slots {
			if s.ID == id {
				respond(w, r, http.StatusOK, s)
				return
			}
		}
		http.Error(w, "Slot not found", http.StatusNotFound)
	}
}

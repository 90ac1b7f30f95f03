package handlers

import (
	"net/http"

	"github.com/mauv0809/court-finder/internal/catalog"
	"github.com/mauv0809/court-finder/internal/filter"
	"github.com/mauv0809/court-finder/internal/source"
)

// FiltersResponse describes the filter controls.
type FiltersResponse struct {
	source.FilterOptions
	Sorts     []filter.SortOption `json:"sorts"`
	Defaults  filter.Criteria     `json:"defaults"`
	City      string              `json:"city"`
	MapAPIKey string              `json:"mapApiKey,omitempty"`
}

// FiltersHandler returns the filter choices for the current data.
func FiltersHandler(store catalog.Store, city, mapAPIKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, FiltersResponse{
			FilterOptions: source.Options(store.Current().Slots),
			Sorts:         filter.SortOptions(),
			Defaults:      filter.Default(),
			City:          city,
			MapAPIKey:     mapAPIKey,
		})
	}
}

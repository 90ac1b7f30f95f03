package handlers

import (
	"net/http"

	"github.com/mauv0809/court-finder/internal/catalog"
)

// GroupsHandler lists the active community groups slots were collected from.
func GroupsHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, store.Groups())
	}
}

package handlers

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/court-finder/internal/catalog"
)

// StatusHandler reports the load state. A failed snapshot is reported as blocking.
func StatusHandler(store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, store.Status())
	}
}

// RefreshHandler runs a load cycle and answers with the resulting status. The
// cycle is not cancelled if the client goes away.
func RefreshHandler(refresher Refresher, store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Manual refresh requested", "requestID", RequestIDFromContext(r))
		gen := refresher.Load(context.WithoutCancel(r.Context()))
		log.Info("Manual refresh finished", "generation", gen.ID)
		respond(w, r, http.StatusOK, store.Status())
	}
}

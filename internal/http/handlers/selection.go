package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/court-finder/internal/catalog"
	"github.com/mauv0809/court-finder/internal/selection"
)

// KeepAliveInterval is how often an idle event stream is pinged.
var KeepAliveInterval = 25 * time.Second

// eventBuffer bounds the changes queued for one slow stream client.
const eventBuffer = 16

// ActiveResponse is the current cross-view selection.
type ActiveResponse struct {
	ID      string            `json:"id"`
	Active  bool              `json:"active"`
	View    selection.View    `json:"view"`
	Effects selection.Effects `json:"effects"`
}

// SelectRequest is the body of POST /active.
type SelectRequest struct {
	ID     string `json:"id"`
	Origin string `json:"origin"`
}

// ViewRequest is the body of PUT /view.
type ViewRequest struct {
	View string `json:"view"`
}

func activeResponse(state *selection.State) ActiveResponse {
	id, ok := state.Active()
	view := state.View()
	return ActiveResponse{ID: id, Active: ok, View: view, Effects: selection.EffectsFor(view, id)}
}

// GetActiveHandler returns the active slot and what each mounted view does with it.
func GetActiveHandler(state *selection.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, activeResponse(state))
	}
}

// SelectHandler makes a slot of the current selection active.
func SelectHandler(state *selection.State, store catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode select request", "error", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.ID == "" {
			http.Error(w, "Missing slot id", http.StatusBadRequest)
			return
		}
		origin := selection.OriginCardClick
		if req.Origin != "" {
			o, ok := selection.ParseOrigin(req.Origin)
			if !ok {
				http.Error(w, fmt.Sprintf("Unknown origin %q", req.Origin), http.StatusBadRequest)
				return
			}
			origin = o
		}
		if !containsSlot(store, req.ID) {
			http.Error(w, "Slot not found", http.StatusNotFound)
			return
		}
		state.Select(req.ID, origin)
		respond(w, r, http.StatusOK, activeResponse(state))
	}
}

// ClearHandler drops the active slot.
func ClearHandler(state *selection.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := selection.OriginPopupClose
		if raw := r.URL.Query().Get("origin"); raw != "" {
			o, ok := selection.ParseOrigin(raw)
			if !ok {
				http.Error(w, fmt.Sprintf("Unknown origin %q", raw), http.StatusBadRequest)
				return
			}
			origin = o
		}
		state.Clear(origin)
		respond(w, r, http.StatusOK, activeResponse(state))
	}
}

// SetViewHandler records which layout is mounted.
func SetViewHandler(state *selection.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ViewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		view, ok := selection.ParseView(req.View)
		if !ok {
			http.Error(w, fmt.Sprintf("Unknown view %q", req.View), http.StatusBadRequest)
			return
		}
		state.SetView(view)
		respond(w, r, http.StatusOK, activeResponse(state))
	}
}

// SelectionEventsHandler streams selection changes as server-sent events. The
// first event carries the current state. Changes are dropped for a client that
// falls more than eventBuffer events behind.
func SelectionEventsHandler(state *selection.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
			return
		}

		events := make(chan selection.Change, eventBuffer)
		unsubscribe := state.Subscribe(func(c selection.Change) {
			select {
			case events <- c:
			default:
				log.Warn("Dropped selection event for slow client", "id", c.ID, "requestID", RequestIDFromContext(r))
			}
		})
		defer unsubscribe()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		if err := writeEvent(w, activeResponse(state)); err != nil {
			return
		}
		flusher.Flush()

		ticker := time.NewTicker(KeepAliveInterval)
		defer ticker.Stop()
		for {
			select {
			case <-r.Context().Done():
				log.Debug("Selection stream closed", "requestID", RequestIDFromContext(r))
				return
			case c := <-events:
				if err := writeEvent(w, c); err != nil {
					return
				}
				flusher.Flush()
			case <-ticker.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

func writeEvent(w http.ResponseWriter, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("Failed to marshal selection event", "error", err)
		return err
	}
	_, err = fmt.Fprintf(w, "event: selection\ndata: %s\n\n", data)
	return err
}

func containsSlot(store catalog.Store, id string) bool {
	for _, s := range store.Current().Slots {
		if s.ID == id {
			return true
		}
	}
	return false
}

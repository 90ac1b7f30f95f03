package http

import (
	"net/http"

	"github.com/mauv0809/court-finder/internal/catalog"
	"github.com/mauv0809/court-finder/internal/config"
	"github.com/mauv0809/court-finder/internal/http/handlers"
	"github.com/mauv0809/court-finder/internal/metrics"
	"github.com/mauv0809/court-finder/internal/selection"
)

func NewServer(store catalog.Store, refresher handlers.Refresher, state *selection.State, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Store:          store,
		Refresher:      refresher,
		Selection:      state,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(handler, requestIDMiddleware, paramsMiddleware, authMiddleware)
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", s.chain(handlers.HealthCheckHandler()))
	s.Router.Handle("GET /slots", s.chain(handlers.ListSlotsHandler(s.Store, s.Metrics, s.Cfg.City)))
	s.Router.Handle("GET /slots/{id}", s.chain(handlers.GetSlotHandler(s.Store)))
	s.Router.Handle("GET /status", s.chain(handlers.StatusHandler(s.Store)))
	s.Router.Handle("POST /refresh", s.chain(handlers.RefreshHandler(s.Refresher, s.Store)))
	s.Router.Handle("GET /groups", s.chain(handlers.GroupsHandler(s.Store)))
	s.Router.Handle("GET /filters", s.chain(handlers.FiltersHandler(s.Store, s.Cfg.City, s.Cfg.MapAPIKey)))
	s.Router.Handle("GET /active", s.chain(handlers.GetActiveHandler(s.Selection)))
	s.Router.Handle("POST /active", s.chain(handlers.SelectHandler(s.Selection, s.Store)))
	s.Router.Handle("DELETE /active", s.chain(handlers.ClearHandler(s.Selection)))
	s.Router.Handle("GET /active/events", s.chain(handlers.SelectionEventsHandler(s.Selection)))
	s.Router.Handle("PUT /view", s.chain(handlers.SetViewHandler(s.Selection)))
}

func (s *Server) chain(h http.Handler) http.Handler {
	return Chain(h, requestIDMiddleware, paramsMiddleware)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

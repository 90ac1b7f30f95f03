package http

import (
	"net/http"

	"github.com/mauv0809/court-finder/internal/catalog"
	"github.com/mauv0809/court-finder/internal/config"
	"github.com/mauv0809/court-finder/internal/http/handlers"
	"github.com/mauv0809/court-finder/internal/metrics"
	"github.com/mauv0809/court-finder/internal/selection"
)

type Server struct {
	Store          catalog.Store
	Refresher      handlers.Refresher
	Selection      *selection.State
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}

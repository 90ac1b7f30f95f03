package handlers

import (
	"context"

	"github.com/mauv0809/court-finder/internal/catalog"
)

// Refresher runs a load cycle on demand.
type Refresher interface {
	Load(ctx context.Context) catalog.Generation
}

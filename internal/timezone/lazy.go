package timezone

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tzcatalog/internal/timezone/metrics"
)

// Source hands out the catalog a view reads from. Both *Catalog and
// *LazyCatalog implement it.
type Source interface {
	Catalog() *Catalog
}

// Loader supplies raw records, typically by parsing a dataset file.
type Loader func() ([]RawZone, error)

// LazyCatalog builds its Catalog on first use, exactly once. A failing
// loader is logged and leaves an empty, valid catalog behind.
type LazyCatalog struct {
	get func() *Catalog
}

// NewLazyCatalog defers load until the first call to Catalog.
func NewLazyCatalog(load Loader, opts ...Option) *LazyCatalog {
	o := applyOptions(opts)
	return &LazyCatalog{
		get: sync.OnceValue(func() *Catalog {
			return build(load, o.logger, o.metrics)
		}),
	}
}

// Catalog builds the catalog if needed and returns it.
func (l *LazyCatalog) Catalog() *Catalog {
	return l.get()
}

func build(load Loader, logger *slog.Logger, m *metrics.Metrics) *Catalog {
	ctx := context.Background()
	start := time.Now()

	records, err := load()
	if err != nil {
		logger.WarnContext(ctx, "zone dataset unavailable, using empty catalog",
			"error", err,
		)
		records = nil
	}

	c := NewCatalog(records)
	logger.InfoContext(ctx, "zone catalog built",
		"zones", c.Len(),
		"regions", c.RegionCount(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	if m != nil {
		m.SetCatalogSize(c.Len(), c.RegionCount())
		m.ObserveCatalogBuild(start)
	}
	return c
}

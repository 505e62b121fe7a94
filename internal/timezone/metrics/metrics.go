package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup kinds and outcomes used as label values.
const (
	KindExact   = "exact"
	KindNearest = "nearest"

	OutcomeHit     = "hit"
	OutcomeMiss    = "miss"
	OutcomeInvalid = "invalid"
)

// Metrics provides observability for the timezone module.
// Tracks lookup outcomes, fallback usage, filter churn and catalog size.
type Metrics struct {
	Lookups         *prometheus.CounterVec
	Fallbacks       prometheus.Counter
	FilterChanges   prometheus.Counter
	CatalogZones    prometheus.Gauge
	CatalogRegions  prometheus.Gauge
	CatalogBuild    prometheus.Histogram
	NearestDuration prometheus.Histogram
}

// New creates a Metrics instance registered on the default registry.
// Call it once per process; tests should use NewWithRegisterer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates a Metrics instance registered on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tzcatalog_lookups_total",
			Help: "Total zone lookups by kind and outcome",
		}, []string{"kind", "outcome"}),
		Fallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "tzcatalog_fallbacks_total",
			Help: "Total coordinate lookups answered with the default zone",
		}),
		FilterChanges: factory.NewCounter(prometheus.CounterOpts{
			Name: "tzcatalog_filter_changes_total",
			Help: "Total region filter selections, including no-op reselections",
		}),
		CatalogZones: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tzcatalog_zones",
			Help: "Number of zone records in the built catalog",
		}),
		CatalogRegions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tzcatalog_regions",
			Help: "Number of distinct regions in the built catalog",
		}),
		CatalogBuild: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tzcatalog_build_duration_seconds",
			Help:    "Duration of loading and indexing the catalog",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		NearestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tzcatalog_nearest_duration_seconds",
			Help:    "Duration of nearest-zone scans",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

// IncrementLookup records one lookup with its outcome.
func (m *Metrics) IncrementLookup(kind, outcome string) {
	m.Lookups.WithLabelValues(kind, outcome).Inc()
}

// IncrementFallback records a lookup that resolved to the default zone.
func (m *Metrics) IncrementFallback() {
	m.Fallbacks.Inc()
}

// IncrementFilterChange records a region filter selection.
func (m *Metrics) IncrementFilterChange() {
	m.FilterChanges.Inc()
}

// SetCatalogSize publishes the size of a freshly built catalog.
func (m *Metrics) SetCatalogSize(zones, regions int) {
	m.CatalogZones.Set(float64(zones))
	m.CatalogRegions.Set(float64(regions))
}

// ObserveCatalogBuild records the duration of a catalog build.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveCatalogBuild(start time.Time) {
	m.CatalogBuild.Observe(time.Since(start).Seconds())
}

// ObserveNearest records the duration of a nearest-zone scan.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveNearest(start time.Time) {
	m.NearestDuration.Observe(time.Since(start).Seconds())
}

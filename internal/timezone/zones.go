package timezone

import (
	"fmt"
	"iter"
	"log/slog"
	"time"

	"tzcatalog/internal/timezone/metrics"
)

// ZoneList is a read-only view over every record in catalog order. It adds
// the coordinate lookup with a guaranteed fallback on top of the catalog.
type ZoneList struct {
	catalog    *Catalog
	fallback   *Zone
	translator Translator
	observers  Observers
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewZoneList builds the catalog behind source if needed and resolves the
// fallback zone (America/New_York unless WithDefaultZone says otherwise).
// A fallback missing from the catalog, including the empty-catalog case,
// returns ErrDefaultZoneMissing.
func NewZoneList(source Source, opts ...Option) (*ZoneList, error) {
	o := applyOptions(opts)
	l := &ZoneList{
		translator: o.translator,
		logger:     o.logger,
		metrics:    o.metrics,
	}
	for _, obs := range o.observers {
		l.observers.Add(obs)
	}

	l.observers.rowsReplaced(ResetBegin)
	l.catalog = source.Catalog()
	l.observers.rowsReplaced(ResetEnd)

	fallback, ok := l.catalog.FindExact(o.defaultRegion, o.defaultKey)
	if !ok {
		l.logger.Error("default zone missing from catalog",
			"region", o.defaultRegion,
			"zone", o.defaultKey,
			"zones", l.catalog.Len(),
		)
		return nil, fmt.Errorf("%w: %s/%s", ErrDefaultZoneMissing, o.defaultRegion, o.defaultKey)
	}
	l.fallback = fallback
	return l, nil
}

// Observe subscribes obs to future notifications.
func (l *ZoneList) Observe(obs Observer) (remove func()) {
	return l.observers.Add(obs)
}

// Catalog returns the catalog the list reads from.
func (l *ZoneList) Catalog() *Catalog {
	return l.catalog
}

// Translator returns the display-name translator, which may be nil.
func (l *ZoneList) Translator() Translator {
	return l.translator
}

// RowCount returns the number of records.
func (l *ZoneList) RowCount() int {
	return l.catalog.Len()
}

// Zone returns the record at row.
func (l *ZoneList) Zone(row int) (*Zone, bool) {
	return l.catalog.At(row)
}

// Data returns the value of row for role.
func (l *ZoneList) Data(row int, role Role) (string, bool) {
	z, ok := l.catalog.At(row)
	if !ok {
		return "", false
	}
	return zoneData(z, role, l.translator)
}

// RoleNames maps the roles ZoneList answers to their external names.
func (l *ZoneList) RoleNames() map[Role]string {
	return zoneRoleNames()
}

// FindExact looks a zone up by region and key.
func (l *ZoneList) FindExact(region, key string) (*Zone, bool) {
	z, ok := l.catalog.FindExact(region, key)
	l.recordLookup(metrics.KindExact, outcome(ok))
	return z, ok
}

// FindNearest returns the zone closest to (lat, lon); see Catalog.FindNearest.
func (l *ZoneList) FindNearest(lat, lon float64) (*Zone, bool) {
	start := time.Now()
	z, ok := l.catalog.FindNearest(lat, lon)

	result := outcome(ok)
	if !ValidCoordinate(lat, lon) {
		result = metrics.OutcomeInvalid
	}
	l.recordLookup(metrics.KindNearest, result)
	if l.metrics != nil {
		l.metrics.ObserveNearest(start)
	}
	return z, ok
}

// Resolve is FindNearest with the fallback applied. usedFallback reports
// whether the default zone was substituted.
func (l *ZoneList) Resolve(lat, lon float64) (z *Zone, usedFallback bool) {
	if nearest, ok := l.FindNearest(lat, lon); ok {
		return nearest, false
	}
	l.logger.Debug("nearest zone unavailable, using default",
		"latitude", lat,
		"longitude", lon,
		"default", l.fallback.ID(),
	)
	if l.metrics != nil {
		l.metrics.IncrementFallback()
	}
	return l.fallback, true
}

// LookupOrDefault never returns nil: invalid coordinates resolve to the
// default zone.
func (l *ZoneList) LookupOrDefault(lat, lon float64) *Zone {
	z, _ := l.Resolve(lat, lon)
	return z
}

// Fallback returns the default zone resolved at construction.
func (l *ZoneList) Fallback() *Zone {
	return l.fallback
}

// Begin returns a fresh cursor positioned before the first record.
func (l *ZoneList) Begin() *Iterator {
	return &Iterator{catalog: l.catalog, pos: -1}
}

// All yields (row, zone) pairs in catalog order.
func (l *ZoneList) All() iter.Seq2[int, *Zone] {
	return func(yield func(int, *Zone) bool) {
		for it := l.Begin(); it.Next(); {
			if !yield(it.Index(), it.Zone()) {
				return
			}
		}
	}
}

func (l *ZoneList) recordLookup(kind, result string) {
	if l.metrics != nil {
		l.metrics.IncrementLookup(kind, result)
	}
	l.logger.Debug("zone lookup",
		"kind", kind,
		"outcome", result,
	)
}

func outcome(found bool) string {
	if found {
		return metrics.OutcomeHit
	}
	return metrics.OutcomeMiss
}

func zoneData(z *Zone, role Role, t Translator) (string, bool) {
	switch role {
	case RoleName:
		return z.DisplayName(t), true
	case RoleKey:
		return z.Key(), true
	case RoleRegion:
		return z.Region(), true
	default:
		return "", false
	}
}

func zoneRoleNames() map[Role]string {
	return map[Role]string{
		RoleName:   RoleName.String(),
		RoleKey:    RoleKey.String(),
		RoleRegion: RoleRegion.String(),
	}
}

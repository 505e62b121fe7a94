// Package locale keeps the user's time-zone choice: the selected zone, the
// region filter that follows it, and the settings entries recording it.
package locale

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"tzcatalog/internal/settings"
	"tzcatalog/internal/timezone"
	"tzcatalog/pkg/platform/sentinel"
)

var ErrUnknownZone = fmt.Errorf("unknown zone: %w", sentinel.ErrNotFound)

// Selection is the current choice. Fallback is set when a coordinate lookup
// resolved to the default zone.
type Selection struct {
	Zone     *timezone.Zone
	Fallback bool
}

// Selector serializes access to the views it drives, so it can be shared
// between goroutines even though the views themselves cannot.
type Selector struct {
	mu      sync.Mutex
	zones   *timezone.ZoneList
	filter  *timezone.RegionFilter
	store   *settings.Store
	current *Selection
	logger  *slog.Logger
}

type Option func(*Selector)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Selector) {
		s.logger = logger
	}
}

func New(zones *timezone.ZoneList, filter *timezone.RegionFilter, store *settings.Store, opts ...Option) *Selector {
	s := &Selector{
		zones:  zones,
		filter: filter,
		store:  store,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectByLocation picks the zone nearest to (lat, lon), or the default zone
// when the coordinate is invalid.
func (s *Selector) SelectByLocation(ctx context.Context, lat, lon float64) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	z, fallback := s.zones.Resolve(lat, lon)
	sel := Selection{Zone: z, Fallback: fallback}
	s.apply(ctx, sel)
	return sel
}

// SelectZone picks a zone by its region and key.
func (s *Selector) SelectZone(ctx context.Context, region, key string) (Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	z, ok := s.zones.FindExact(region, key)
	if !ok {
		return Selection{}, fmt.Errorf("%w: %s/%s", ErrUnknownZone, region, key)
	}
	sel := Selection{Zone: z}
	s.apply(ctx, sel)
	return sel, nil
}

// SetRegion narrows the visible zones without changing the selection.
func (s *Selector) SetRegion(region string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.SetSelectedRegion(region)
}

// Region returns the filter's current region.
func (s *Selector) Region() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter.SelectedRegion()
}

// VisibleZones returns the zones that pass the region filter.
func (s *Selector) VisibleZones() []*timezone.Zone {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter.Zones()
}

// Current returns the selection, if one was made.
func (s *Selector) Current() (Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Selection{}, false
	}
	return *s.current, true
}

// Restore reselects the zone recorded in the settings store, if any.
func (s *Selector) Restore(ctx context.Context) bool {
	region := s.store.String(settings.KeyLocationRegion)
	key := s.store.String(settings.KeyLocationZone)
	if region == "" || key == "" {
		return false
	}
	if _, err := s.SelectZone(ctx, region, key); err != nil {
		s.logger.WarnContext(ctx, "stored zone not in catalog", "region", region, "zone", key)
		return false
	}
	return true
}

// Seed records zoneID ("Region/Key") in store so a later Restore selects it.
// It reports false, leaving store untouched, when zoneID has no region part.
func Seed(store *settings.Store, zoneID string) bool {
	region, key, ok := strings.Cut(zoneID, "/")
	if !ok || region == "" || key == "" {
		return false
	}
	store.Insert(settings.KeyLocationRegion, region)
	store.Insert(settings.KeyLocationZone, key)
	return true
}

func (s *Selector) apply(ctx context.Context, sel Selection) {
	s.current = &sel
	s.filter.SetSelectedRegion(sel.Zone.Region())
	s.store.Insert(settings.KeyLocationRegion, sel.Zone.Region())
	s.store.Insert(settings.KeyLocationZone, sel.Zone.Key())

	s.logger.InfoContext(ctx, "zone selected",
		"zone", sel.Zone.ID(),
		"fallback", sel.Fallback,
	)
}

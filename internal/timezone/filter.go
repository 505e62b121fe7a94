package timezone

import (
	"log/slog"

	"tzcatalog/internal/timezone/metrics"
)

// PropertyRegion is the property name announced when the selection changes.
const PropertyRegion = "region"

// RegionFilter is a view over a ZoneList restricted to one region.
//
// States:
//   - unfiltered: selected region is empty, every row is visible
//   - filtered: only rows whose region equals the selection (case-sensitive)
//
// The visible rows are recomputed eagerly on every SetSelectedRegion, so reads
// afterwards are O(1).
type RegionFilter struct {
	source    *ZoneList
	region    string
	rows      []int
	observers Observers
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// NewRegionFilter starts unfiltered.
func NewRegionFilter(source *ZoneList, opts ...Option) *RegionFilter {
	o := applyOptions(opts)
	f := &RegionFilter{
		source:  source,
		logger:  o.logger,
		metrics: o.metrics,
	}
	for _, obs := range o.observers {
		f.observers.Add(obs)
	}

	f.observers.rowsReplaced(ResetBegin)
	f.recompute()
	f.observers.rowsReplaced(ResetEnd)
	return f
}

// Observe subscribes obs to future notifications.
func (f *RegionFilter) Observe(obs Observer) (remove func()) {
	return f.observers.Add(obs)
}

// SelectedRegion returns the current selection; empty means unfiltered.
func (f *RegionFilter) SelectedRegion() string {
	return f.region
}

// SetSelectedRegion replaces the selection and recomputes the visible rows.
// Observers are notified every time, including when region equals the
// current selection.
func (f *RegionFilter) SetSelectedRegion(region string) {
	f.observers.rowsReplaced(ResetBegin)
	f.region = region
	f.recompute()
	f.observers.rowsReplaced(ResetEnd)
	f.observers.propertyChanged(PropertyRegion)

	if f.metrics != nil {
		f.metrics.IncrementFilterChange()
	}
	f.logger.Debug("region filter changed",
		"region", region,
		"visible", len(f.rows),
	)
}

// Accepts reports whether z passes the current selection.
func (f *RegionFilter) Accepts(z *Zone) bool {
	return f.region == "" || z.Region() == f.region
}

// RowCount returns the number of visible rows.
func (f *RegionFilter) RowCount() int {
	return len(f.rows)
}

// SourceRow maps a visible row to its row in the source ZoneList.
func (f *RegionFilter) SourceRow(row int) (int, bool) {
	if row < 0 || row >= len(f.rows) {
		return -1, false
	}
	return f.rows[row], true
}

// Zone returns the zone at a visible row.
func (f *RegionFilter) Zone(row int) (*Zone, bool) {
	src, ok := f.SourceRow(row)
	if !ok {
		return nil, false
	}
	return f.source.Zone(src)
}

// Data returns the value of a visible row for role.
func (f *RegionFilter) Data(row int, role Role) (string, bool) {
	z, ok := f.Zone(row)
	if !ok {
		return "", false
	}
	return zoneData(z, role, f.source.Translator())
}

// RoleNames maps the roles RegionFilter answers to their external names.
func (f *RegionFilter) RoleNames() map[Role]string {
	return zoneRoleNames()
}

// Zones returns the visible zones in order.
func (f *RegionFilter) Zones() []*Zone {
	out := make([]*Zone, 0, len(f.rows))
	for _, src := range f.rows {
		if z, ok := f.source.Zone(src); ok {
			out = append(out, z)
		}
	}
	return out
}

func (f *RegionFilter) recompute() {
	rows := make([]int, 0, f.source.RowCount())
	for row, z := range f.source.All() {
		if f.Accepts(z) {
			rows = append(rows, row)
		}
	}
	f.rows = rows
}

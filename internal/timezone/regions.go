package timezone

// Role selects which value of a row a presentation layer asks for.
type Role int

const (
	// RoleName is the display label.
	RoleName Role = iota
	// RoleKey is the stable key (zone key, or region name for RegionList).
	RoleKey
	// RoleRegion is the zone's region; only ZoneList and RegionFilter have it.
	RoleRegion
)

func (r Role) String() string {
	switch r {
	case RoleName:
		return "name"
	case RoleKey:
		return "key"
	case RoleRegion:
		return "region"
	default:
		return "unknown"
	}
}

// RegionList is a read-only view of the catalog's distinct regions in
// first-seen order.
type RegionList struct {
	catalog    *Catalog
	translator Translator
	observers  Observers
}

// NewRegionList builds the catalog behind source if that has not happened
// yet. Observers passed with WithObserver see the initial reset.
func NewRegionList(source Source, opts ...Option) *RegionList {
	o := applyOptions(opts)
	l := &RegionList{translator: o.translator}
	for _, obs := range o.observers {
		l.observers.Add(obs)
	}

	l.observers.rowsReplaced(ResetBegin)
	l.catalog = source.Catalog()
	l.observers.rowsReplaced(ResetEnd)
	return l
}

// Observe subscribes obs to future notifications.
func (l *RegionList) Observe(obs Observer) (remove func()) {
	return l.observers.Add(obs)
}

// RowCount returns the number of distinct regions.
func (l *RegionList) RowCount() int {
	return l.catalog.RegionCount()
}

// Data returns the value of row for role. RoleName is the translated label,
// RoleKey the region name itself.
func (l *RegionList) Data(row int, role Role) (string, bool) {
	region, ok := l.catalog.RegionAt(row)
	if !ok {
		return "", false
	}
	switch role {
	case RoleName:
		if l.translator == nil {
			return Humanize(region), true
		}
		return l.translator.Translate(RegionNames, region), true
	case RoleKey:
		return region, true
	default:
		return "", false
	}
}

// RoleNames maps the roles RegionList answers to their external names.
func (l *RegionList) RoleNames() map[Role]string {
	return map[Role]string{
		RoleName: RoleName.String(),
		RoleKey:  RoleKey.String(),
	}
}

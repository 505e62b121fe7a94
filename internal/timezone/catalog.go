package timezone

import "math"

type zoneID struct {
	region string
	key    string
}

// Catalog owns the zone records and the indexes derived from them. All three
// structures are built together in NewCatalog; a *Catalog is never observable
// half-built and is safe for concurrent reads.
type Catalog struct {
	zones   []Zone
	index   map[zoneID]int
	regions []string
}

// NewCatalog builds a catalog from records, keeping their order. Nothing is
// validated or deduplicated: on a (region, key) collision the first record
// wins the exact index, and later duplicates stay reachable by position only.
// Empty input yields a valid, empty catalog.
func NewCatalog(records []RawZone) *Catalog {
	c := &Catalog{
		zones: make([]Zone, 0, len(records)),
		index: make(map[zoneID]int, len(records)),
	}
	seenRegions := make(map[string]struct{})

	for _, r := range records {
		pos := len(c.zones)
		c.zones = append(c.zones, newZone(r))

		id := zoneID{region: r.Region, key: r.Key}
		if _, exists := c.index[id]; !exists {
			c.index[id] = pos
		}
		if _, seen := seenRegions[r.Region]; !seen {
			seenRegions[r.Region] = struct{}{}
			c.regions = append(c.regions, r.Region)
		}
	}
	return c
}

// Catalog returns c itself so a built catalog can be passed wherever a
// Source is expected.
func (c *Catalog) Catalog() *Catalog {
	return c
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.zones)
}

// At returns the record at position i in stored order.
func (c *Catalog) At(i int) (*Zone, bool) {
	if i < 0 || i >= len(c.zones) {
		return nil, false
	}
	return &c.zones[i], true
}

// RegionCount returns the number of distinct regions.
func (c *Catalog) RegionCount() int {
	return len(c.regions)
}

// RegionAt returns the i-th distinct region in first-seen order.
func (c *Catalog) RegionAt(i int) (string, bool) {
	if i < 0 || i >= len(c.regions) {
		return "", false
	}
	return c.regions[i], true
}

// Regions returns a copy of the distinct regions in first-seen order.
func (c *Catalog) Regions() []string {
	out := make([]string, len(c.regions))
	copy(out, c.regions)
	return out
}

// FindExact looks a zone up by region and key.
func (c *Catalog) FindExact(region, key string) (*Zone, bool) {
	pos, ok := c.index[zoneID{region: region, key: key}]
	if !ok {
		return nil, false
	}
	return &c.zones[pos], true
}

// FindNearest returns the record with the smallest squared planar distance to
// (lat, lon). Ties go to the earliest record in stored order. Invalid
// coordinates and an empty catalog both yield (nil, false); picking a
// fallback is the caller's job.
func (c *Catalog) FindNearest(lat, lon float64) (*Zone, bool) {
	if !ValidCoordinate(lat, lon) {
		return nil, false
	}

	best := -1
	bestDist := math.Inf(1)
	for i := range c.zones {
		z := &c.zones[i]
		// strict < keeps the earliest record on ties
		if d := squaredDistance(lat, lon, z.latitude, z.longitude); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return nil, false
	}
	return &c.zones[best], true
}

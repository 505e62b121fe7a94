// Package timezone holds the static catalog of time-zone records and the
// row-oriented views built on top of it.
//
// A Catalog is built once from raw records and never changes afterwards. The
// views (RegionList, ZoneList, RegionFilter) borrow *Zone pointers from it;
// those pointers stay valid for as long as the Catalog is reachable.
package timezone

import "strings"

// RawZone is one record as produced by a dataset loader, before it is owned
// by a Catalog.
type RawZone struct {
	Region    string  `yaml:"region" json:"region"`
	Key       string  `yaml:"zone" json:"zone"`
	Country   string  `yaml:"country" json:"country"`
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
}

// Zone is an immutable time-zone record owned by a Catalog.
//
// Invariants:
//   - Region and Key together identify the zone (first occurrence wins)
//   - No field changes after the owning Catalog is built
type Zone struct {
	region    string
	key       string
	country   string
	latitude  float64
	longitude float64
}

func newZone(r RawZone) Zone {
	return Zone{
		region:    r.Region,
		key:       r.Key,
		country:   r.Country,
		latitude:  r.Latitude,
		longitude: r.Longitude,
	}
}

func (z *Zone) Region() string     { return z.region }
func (z *Zone) Key() string        { return z.key }
func (z *Zone) Country() string    { return z.country }
func (z *Zone) Latitude() float64  { return z.latitude }
func (z *Zone) Longitude() float64 { return z.longitude }

// ID returns the tz database name, e.g. "Europe/Berlin".
func (z *Zone) ID() string {
	return z.region + "/" + z.key
}

// DisplayName asks the translator for the zone's human-readable name. The
// result is not cached; translators may be swapped at runtime.
func (z *Zone) DisplayName(t Translator) string {
	if t == nil {
		return Humanize(z.key)
	}
	return t.Translate(ZoneNames, z.key)
}

// NameKind tells a Translator which table a key belongs to.
type NameKind int

const (
	ZoneNames NameKind = iota
	RegionNames
)

func (k NameKind) String() string {
	switch k {
	case ZoneNames:
		return "tz_names"
	case RegionNames:
		return "tz_regions"
	default:
		return "unknown"
	}
}

// Translator produces display names for zone and region keys.
type Translator interface {
	Translate(kind NameKind, key string) string
}

// TranslatorFunc adapts a plain function to a Translator.
type TranslatorFunc func(kind NameKind, key string) string

func (f TranslatorFunc) Translate(kind NameKind, key string) string {
	return f(kind, key)
}

// Humanize turns a tz key into its untranslated display form:
// "New_York" becomes "New York", "Argentina/Buenos_Aires" becomes
// "Argentina/Buenos Aires".
func Humanize(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

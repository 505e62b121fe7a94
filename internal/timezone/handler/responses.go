package handler

import (
	"tzcatalog/internal/locale"
	"tzcatalog/internal/timezone"
)

// RegionResponse is one entry of GET /regions.
type RegionResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// ZoneResponse describes a single zone.
type ZoneResponse struct {
	ID        string  `json:"id"`
	Region    string  `json:"region"`
	Zone      string  `json:"zone"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LookupResponse is returned by GET /zones/lookup.
type LookupResponse struct {
	ZoneResponse
	Fallback bool `json:"fallback"`
}

// SelectionResponse is returned by the /selection endpoints.
type SelectionResponse struct {
	Zone     ZoneResponse `json:"zone"`
	Fallback bool         `json:"fallback"`
	Region   string       `json:"region"`
}

// FromZone converts a catalog zone to its HTTP representation.
func FromZone(z *timezone.Zone, t timezone.Translator) ZoneResponse {
	return ZoneResponse{
		ID:        z.ID(),
		Region:    z.Region(),
		Zone:      z.Key(),
		Name:      z.DisplayName(t),
		Country:   z.Country(),
		Latitude:  z.Latitude(),
		Longitude: z.Longitude(),
	}
}

func fromZones(zones []*timezone.Zone, t timezone.Translator) []ZoneResponse {
	out := make([]ZoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, FromZone(z, t))
	}
	return out
}

func fromSelection(sel locale.Selection, region string, t timezone.Translator) SelectionResponse {
	return SelectionResponse{
		Zone:     FromZone(sel.Zone, t),
		Fallback: sel.Fallback,
		Region:   region,
	}
}

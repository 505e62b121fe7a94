package handler

import (
	"fmt"
	"strings"

	"tzcatalog/pkg/platform/sentinel"
)

// SelectionRequest is the body of POST /selection: either a zone by name or
// a coordinate to resolve.
type SelectionRequest struct {
	Region    string   `json:"region"`
	Zone      string   `json:"zone"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ByLocation reports whether the request carries a coordinate.
func (r *SelectionRequest) ByLocation() bool {
	return r.Latitude != nil
}

// Validate implements httputil.Validatable.
func (r *SelectionRequest) Validate() error {
	r.Region = strings.TrimSpace(r.Region)
	r.Zone = strings.TrimSpace(r.Zone)

	hasName := r.Region != "" || r.Zone != ""
	hasCoord := r.Latitude != nil || r.Longitude != nil
	switch {
	case hasName && hasCoord:
		return fmt.Errorf("%w: give either region/zone or latitude/longitude", sentinel.ErrInvalidInput)
	case hasCoord && (r.Latitude == nil || r.Longitude == nil):
		return fmt.Errorf("%w: latitude and longitude are both required", sentinel.ErrInvalidInput)
	case hasName && (r.Region == "" || r.Zone == ""):
		return fmt.Errorf("%w: region and zone are both required", sentinel.ErrInvalidInput)
	case !hasName && !hasCoord:
		return fmt.Errorf("%w: request body is empty", sentinel.ErrInvalidInput)
	}
	return nil
}

// RegionRequest is the body of PUT /selection/region.
type RegionRequest struct {
	Region string `json:"region"`
}

func (r *RegionRequest) Validate() error {
	r.Region = strings.TrimSpace(r.Region)
	return nil
}

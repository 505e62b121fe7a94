package timezone

import "math"

// ValidCoordinate reports whether lat/lon are finite and inside
// [-90,90] x [-180,180].
func ValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// squaredDistance is the planar metric used by nearest lookup. There is no
// correction for longitude convergence; the catalog is a coarse lookup table.
func squaredDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := lat1 - lat2
	dLon := lon1 - lon2
	return dLat*dLat + dLon*dLon
}

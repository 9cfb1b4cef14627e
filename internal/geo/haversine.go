// Package geo computes great-circle distances between WGS84 coordinates.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

// Point is a coordinate pair in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Distance returns the haversine distance between a and b in kilometres.
// Inputs are not validated: a NaN coordinate yields a NaN distance.
func Distance(a, b Point) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Finite reports whether d is neither NaN nor infinite.
func Finite(d float64) bool {
	return !math.IsNaN(d) && !math.IsInf(d, 0)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Package geo provides great-circle distance calculations used by the scoring
// engines. Distances are straight-line approximations, not routed distances.
package geo

import (
	"math"

	"github.com/neurofleetx/decision/core/model"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371

// Distance returns the haversine great-circle distance between two coordinates
// in kilometres. NaN inputs propagate to the result.
func Distance(a, b model.Coordinate) float64 {
	lat1 := radians(a.Lat)
	lon1 := radians(a.Lon)
	lat2 := radians(b.Lat)
	lon2 := radians(b.Lon)

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	h := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Asin(math.Sqrt(h))

	return EarthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

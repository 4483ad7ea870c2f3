package model

// Coordinate is a WGS-84 latitude/longitude pair in degrees. Range validation
// is the caller's responsibility.
type Coordinate struct {
	Lat float64
	Lon float64
}

// IsZero reports whether the coordinate is the unset zero value.
func (c Coordinate) IsZero() bool {
	return c.Lat == 0 && c.Lon == 0
}

// TripRequest describes a trip between two points for duration estimation.
type TripRequest struct {
	Pickup  Coordinate
	Dropoff Coordinate
}

// RecommendationRequest describes a pickup and the customer's filters for
// vehicle ranking.
type RecommendationRequest struct {
	Pickup Coordinate
	// Region is the pickup region code. When empty it is auto-detected from
	// the pickup coordinate.
	Region         string
	Passengers     int
	MinCapacity    int
	PreferredType  VehicleType
	PreferElectric bool
	// TopN caps the result list. Zero means the default of 5.
	TopN int
}

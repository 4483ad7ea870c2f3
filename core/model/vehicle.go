package model

import "time"

// VehicleType categorises a vehicle for matching and pricing purposes.
type VehicleType string

const (
	TypeSedan  VehicleType = "SEDAN"
	TypeSUV    VehicleType = "SUV"
	TypeVan    VehicleType = "VAN"
	TypeTruck  VehicleType = "TRUCK"
	TypeBike   VehicleType = "BIKE"
	TypeLuxury VehicleType = "LUXURY"
)

// VehicleStatus reflects the operational state reported by the fleet backend.
type VehicleStatus string

const (
	StatusAvailable   VehicleStatus = "AVAILABLE"
	StatusInUse       VehicleStatus = "IN_USE"
	StatusMaintenance VehicleStatus = "MAINTENANCE"
)

// VehicleSnapshot is a point-in-time view of a fleet vehicle as supplied by the
// caller. Engines never mutate a snapshot; every request gets a fresh value.
type VehicleSnapshot struct {
	ID            string
	VehicleNumber string
	Type          VehicleType
	Capacity      int
	IsElectric    bool
	BatteryLevel  float64 // percent, electric vehicles
	FuelLevel     float64 // percent, combustion vehicles
	HealthScore   float64 // 0-100
	MileageKm     float64
	RegisteredAt  time.Time // fleet onboarding date, used as the age indicator
	Location      Coordinate
	Region        string // administrative region code, e.g. "MH"
	Status        VehicleStatus
}

// EnergyLevel returns the battery level for electric vehicles and the fuel
// level otherwise.
func (v VehicleSnapshot) EnergyLevel() float64 {
	if v.IsElectric {
		return v.BatteryLevel
	}
	return v.FuelLevel
}

// AgeDays returns the vehicle age in whole days at the given time. A zero
// RegisteredAt yields 0.
func (v VehicleSnapshot) AgeDays(at time.Time) int {
	if v.RegisteredAt.IsZero() || at.Before(v.RegisteredAt) {
		return 0
	}
	return int(at.Sub(v.RegisteredAt).Hours() / 24)
}

// AgeYears returns the vehicle age in fractional years at the given time.
func (v VehicleSnapshot) AgeYears(at time.Time) float64 {
	return float64(v.AgeDays(at)) / 365
}

// VehicleCondition carries the subset of vehicle state that influences trip
// duration estimates.
type VehicleCondition struct {
	HealthScore float64 // 0-100
	IsElectric  bool
}

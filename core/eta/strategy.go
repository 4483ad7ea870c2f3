package eta

import (
	"github.com/neurofleetx/decision/core/model"
	"github.com/neurofleetx/decision/core/predictor"
)

// Inputs carries the prepared values a strategy estimates from.
type Inputs struct {
	DistanceKm    float64
	Hour          int
	Weekday       int
	TrafficFactor float64
	Condition     model.VehicleCondition
}

// Strategy produces a trip duration estimate in minutes. ok is false when the
// strategy cannot produce a trustworthy estimate and the engine should fall
// back.
type Strategy interface {
	Estimate(in Inputs) (minutes float64, ok bool)
}

// SpeedBands holds the average speeds assumed per congestion band, in km/h.
type SpeedBands struct {
	Heavy    float64 `json:"heavy_kmh"`
	Moderate float64 `json:"moderate_kmh"`
	Light    float64 `json:"light_kmh"`
}

// DefaultSpeedBands reflect urban fleet telemetry averages.
func DefaultSpeedBands() SpeedBands {
	return SpeedBands{Heavy: 20, Moderate: 30, Light: 45}
}

// RuleBased estimates duration from distance over a congestion-banded average
// speed. The band already encodes the slowdown, so no further traffic
// multiplier is applied.
type RuleBased struct {
	Speeds SpeedBands
}

// Estimate always succeeds.
func (r RuleBased) Estimate(in Inputs) (float64, bool) {
	speed := r.Speeds.Light
	switch {
	case in.TrafficFactor > 1.3:
		speed = r.Speeds.Heavy
	case in.TrafficFactor > 1.1:
		speed = r.Speeds.Moderate
	}
	if speed <= 0 {
		return 0, false
	}
	return in.DistanceKm / speed * 60, true
}

// MLBacked delegates to the currently trained regressor. Provider returns the
// active model, if any; it is consulted on every call so a retrain swap takes
// effect immediately.
type MLBacked struct {
	Provider func() (predictor.Regressor, bool)
}

// Estimate returns ok=false when no model is trained, the model errors, or the
// prediction fails the implied-speed sanity check (below 6 km/h).
func (s MLBacked) Estimate(in Inputs) (float64, bool) {
	if s.Provider == nil {
		return 0, false
	}
	reg, ok := s.Provider()
	if !ok {
		return 0, false
	}
	raw, err := reg.Predict(FeatureVector(in))
	if err != nil {
		return 0, false
	}
	if raw <= 0 || raw > in.DistanceKm*10 {
		return 0, false
	}
	return raw, true
}

// FeatureVector is the training and inference layout shared with the trip
// history samples: distance, hour, weekday, traffic factor, normalised health,
// electric flag.
func FeatureVector(in Inputs) []float64 {
	electric := 0.0
	if in.Condition.IsElectric {
		electric = 1
	}
	return []float64{
		in.DistanceKm,
		float64(in.Hour),
		float64(in.Weekday),
		in.TrafficFactor,
		in.Condition.HealthScore / 100,
		electric,
	}
}

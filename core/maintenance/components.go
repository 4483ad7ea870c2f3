package maintenance

import (
	"hash/fnv"
	"math"

	"github.com/neurofleetx/decision/core/model"
)

// ComponentStatus tags the condition of a single component.
type ComponentStatus string

const (
	StatusGood      ComponentStatus = "GOOD"
	StatusAttention ComponentStatus = "ATTENTION"
	StatusCheck     ComponentStatus = "CHECK"
	StatusReplace   ComponentStatus = "REPLACE"
)

// ComponentHealth is the per-component slice of an assessment.
type ComponentHealth struct {
	Health               float64
	Status               ComponentStatus
	PredictedFailureDays int
}

// componentBreakdown derives engine/battery/brakes/tires health from the
// overall health score and mileage. Failure-day offsets are a deterministic
// jitter keyed on the vehicle ID so repeated assessments agree byte for byte.
func componentBreakdown(v model.VehicleSnapshot, health, energy float64, baseDays int) map[string]ComponentHealth {
	engineHealth := math.Max(0, health-float64(jitter(v.ID, "engine-wear", 0, 9)))
	engineStatus := StatusGood
	if health <= 70 {
		engineStatus = StatusAttention
	}

	batteryStatus := StatusGood
	if energy <= 70 {
		batteryStatus = StatusAttention
	}

	brakesHealth := math.Max(60, 100-v.MileageKm/1000)
	brakesStatus := StatusGood
	if v.MileageKm >= 30000 {
		brakesStatus = StatusCheck
	}

	tiresHealth := math.Max(50, 100-v.MileageKm/800)
	tiresStatus := StatusGood
	if v.MileageKm >= 40000 {
		tiresStatus = StatusReplace
	}

	return map[string]ComponentHealth{
		"engine": {
			Health:               engineHealth,
			Status:               engineStatus,
			PredictedFailureDays: failureDays(baseDays, jitter(v.ID, "engine", -5, 9)),
		},
		"battery": {
			Health:               energy,
			Status:               batteryStatus,
			PredictedFailureDays: failureDays(baseDays, jitter(v.ID, "battery", -3, 6)),
		},
		"brakes": {
			Health:               brakesHealth,
			Status:               brakesStatus,
			PredictedFailureDays: failureDays(baseDays, jitter(v.ID, "brakes", 0, 14)),
		},
		"tires": {
			Health:               tiresHealth,
			Status:               tiresStatus,
			PredictedFailureDays: failureDays(baseDays, jitter(v.ID, "tires", 0, 19)),
		},
	}
}

func failureDays(base, offset int) int {
	d := base + offset
	if d < 1 {
		return 1
	}
	return d
}

// jitter maps the vehicle ID and component name to a stable value in [lo, hi].
func jitter(id, component string, lo, hi int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	_, _ = h.Write([]byte{':'})
	_, _ = h.Write([]byte(component))
	span := hi - lo + 1
	return lo + int(h.Sum32()%uint32(span))
}

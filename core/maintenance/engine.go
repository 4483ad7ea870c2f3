// Package maintenance converts vehicle telemetry into a risk score, priority
// tier, days-to-failure estimate and actionable recommendations. Risk is
// computed either by the additive formula or by a trained classifier; a
// deployment uses exactly one scale, and an unavailable classifier silently
// degrades to the formula.
package maintenance

import (
	"math"
	"time"

	"github.com/neurofleetx/decision/core/logger"
	"github.com/neurofleetx/decision/core/model"
	"github.com/neurofleetx/decision/core/predictor"
)

// PriorityTier orders maintenance urgency.
type PriorityTier string

const (
	TierMinimal  PriorityTier = "MINIMAL"
	TierLow      PriorityTier = "LOW"
	TierMedium   PriorityTier = "MEDIUM"
	TierHigh     PriorityTier = "HIGH"
	TierCritical PriorityTier = "CRITICAL"
)

// Method names the risk scale used for an assessment.
type Method string

const (
	MethodFormula    Method = "formula"
	MethodClassifier Method = "classifier"
)

// GoodConditionAction is the single entry returned when no threshold fires.
const GoodConditionAction = "Vehicle in good condition"

// RiskAssessment is the result of one maintenance evaluation.
type RiskAssessment struct {
	VehicleID              string
	RiskScore              float64 // 0-100, higher is more urgent
	Tier                   PriorityTier
	PredictedDaysToFailure int
	MaintenanceRequired    bool
	RecommendedActions     []string
	Components             map[string]ComponentHealth
	EstimatedCost          float64
	Method                 Method
	// Confidence carries per-class probabilities on classifier-backed
	// assessments; nil on the formula path.
	Confidence map[string]float64
}

// Engine assesses vehicle snapshots.
type Engine struct {
	classifier func() (predictor.Classifier, bool)
	log        logger.Logger
}

// New returns a formula-backed engine.
func New(log logger.Logger) *Engine {
	return &Engine{log: log}
}

// NewWithClassifier returns an engine that prefers the trained classifier and
// falls back to the formula while no model is available.
func NewWithClassifier(provider func() (predictor.Classifier, bool), log logger.Logger) *Engine {
	return &Engine{classifier: provider, log: log}
}

// Assess evaluates the vehicle at the given time. Malformed numeric ranges are
// clamped; the call never fails.
func (e *Engine) Assess(v model.VehicleSnapshot, at time.Time) RiskAssessment {
	if e.classifier != nil {
		if c, ok := e.classifier(); ok {
			if res, err := e.assessClassifier(c, v, at); err == nil {
				return res
			} else if e.log != nil {
				e.log.Warnf("maintenance classifier failed, using formula: %v", err)
			}
		} else if e.log != nil {
			e.log.Debugf("maintenance classifier not trained, using formula")
		}
	}
	return e.assessFormula(v, at)
}

func (e *Engine) assessFormula(v model.VehicleSnapshot, at time.Time) RiskAssessment {
	health := clampPercent(v.HealthScore)
	energy := clampPercent(v.EnergyLevel())
	ageYears := v.AgeYears(at)

	risk := (100 - health) * 0.4

	switch {
	case v.MileageKm > 100000:
		risk += 30
	case v.MileageKm > 50000:
		risk += 15
	case v.MileageKm > 25000:
		risk += 5
	}

	switch {
	case energy < 30:
		risk += 15
	case energy < 50:
		risk += 8
	}
	if !v.IsElectric && clampPercent(v.FuelLevel) < 20 {
		risk += 5
	}

	risk += ageYears * 3
	risk = math.Min(risk, 100)

	tier, days := tierForRisk(risk)

	return RiskAssessment{
		VehicleID:              v.ID,
		RiskScore:              round2(risk),
		Tier:                   tier,
		PredictedDaysToFailure: days,
		MaintenanceRequired:    risk > 35,
		RecommendedActions:     actions(v, at, health, energy),
		Components:             componentBreakdown(v, health, energy, days),
		EstimatedCost:          round2(50 + risk*15),
		Method:                 MethodFormula,
	}
}

func tierForRisk(risk float64) (PriorityTier, int) {
	switch {
	case risk >= 80:
		return TierCritical, 3
	case risk >= 60:
		return TierHigh, 7
	case risk >= 40:
		return TierMedium, 14
	case risk >= 20:
		return TierLow, 30
	default:
		return TierMinimal, 90
	}
}

// actions runs the independent threshold checks. The list is never empty.
func actions(v model.VehicleSnapshot, at time.Time, health, energy float64) []string {
	var out []string
	if health < 75 {
		out = append(out, "Schedule comprehensive health check")
	}
	if v.MileageKm > 100000 {
		out = append(out, "Engine oil change recommended")
	}
	if v.AgeDays(at) > 730 {
		out = append(out, "Full vehicle inspection due to age")
	}
	if energy < 50 {
		if v.IsElectric {
			out = append(out, "Recharge before long trips")
		} else {
			out = append(out, "Refuel before long trips")
		}
	}
	if len(out) == 0 {
		out = []string{GoodConditionAction}
	}
	return out
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package maintenance

import (
	"time"

	"github.com/neurofleetx/decision/core/model"
	"github.com/neurofleetx/decision/core/predictor"
)

// ClassLabels are the maintenance priority classes the classifier is trained
// on, in severity order.
var ClassLabels = []string{"LOW", "MEDIUM", "HIGH"}

// ClassifierFeatures is the training and inference layout for the
// classifier-backed scale: mileage in thousands, health, energy, age in years,
// electric flag.
func ClassifierFeatures(v model.VehicleSnapshot, at time.Time) []float64 {
	electric := 0.0
	if v.IsElectric {
		electric = 1
	}
	return []float64{
		v.MileageKm / 1000,
		clampPercent(v.HealthScore),
		clampPercent(v.EnergyLevel()),
		v.AgeYears(at),
		electric,
	}
}

// assessClassifier scores the vehicle on the classifier scale: the winning
// class probability becomes the risk score, an alternate scale from the
// additive formula. Components and actions are shared with the formula path.
func (e *Engine) assessClassifier(c predictor.Classifier, v model.VehicleSnapshot, at time.Time) (RiskAssessment, error) {
	label, probs, err := c.Predict(ClassifierFeatures(v, at))
	if err != nil {
		return RiskAssessment{}, err
	}

	tier, days := tierForClass(label)
	risk := round2(probs[label] * 100)

	confidence := make(map[string]float64, len(probs))
	for k, p := range probs {
		confidence[k] = round2(p * 100)
	}

	health := clampPercent(v.HealthScore)
	energy := clampPercent(v.EnergyLevel())

	return RiskAssessment{
		VehicleID:              v.ID,
		RiskScore:              risk,
		Tier:                   tier,
		PredictedDaysToFailure: days,
		MaintenanceRequired:    label != "LOW",
		RecommendedActions:     actions(v, at, health, energy),
		Components:             componentBreakdown(v, health, energy, days),
		EstimatedCost:          round2(50 + risk*15),
		Method:                 MethodClassifier,
		Confidence:             confidence,
	}, nil
}

func tierForClass(label string) (PriorityTier, int) {
	switch label {
	case "HIGH":
		return TierHigh, 7
	case "MEDIUM":
		return TierMedium, 30
	default:
		return TierLow, 90
	}
}

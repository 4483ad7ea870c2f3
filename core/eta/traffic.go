package eta

// TrafficLevel is a coarse congestion label supplied by callers that have
// their own traffic source. The empty value means "derive from the clock".
type TrafficLevel string

const (
	TrafficUnset  TrafficLevel = ""
	TrafficLow    TrafficLevel = "LOW"
	TrafficMedium TrafficLevel = "MEDIUM"
	TrafficHigh   TrafficLevel = "HIGH"
)

// FactorForHour models the daily congestion pattern: morning and evening peaks,
// a moderate midday plateau and free-flowing traffic otherwise.
func FactorForHour(hour int) float64 {
	switch {
	case (hour >= 8 && hour <= 10) || (hour >= 18 && hour <= 20):
		return 1.5
	case hour >= 11 && hour <= 17:
		return 1.2
	default:
		return 1.0
	}
}

// factorForLevel converts a discrete level to the same multiplicative scale as
// FactorForHour.
func factorForLevel(l TrafficLevel) (float64, bool) {
	switch l {
	case TrafficLow:
		return 1.2, true
	case TrafficMedium:
		return 1.5, true
	case TrafficHigh:
		return 1.8, true
	default:
		return 0, false
	}
}

// conditionLabel renders the factor as the label reported to callers.
func conditionLabel(factor float64) string {
	switch {
	case factor > 1.3:
		return "Heavy"
	case factor > 1.1:
		return "Moderate"
	default:
		return "Light"
	}
}

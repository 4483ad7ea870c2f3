// Package events defines the decision events published on the internal bus
// for observability. Events are emitted after a decision completes and never
// influence scoring.
package events

import (
	"time"

	"github.com/neurofleetx/decision/core/eta"
	"github.com/neurofleetx/decision/core/maintenance"
)

// EtaEvent is published after every ETA prediction.
type EtaEvent struct {
	DecisionID string
	Prediction eta.Prediction
	Time       time.Time
}

// RecommendationEvent is published after every recommendation request.
type RecommendationEvent struct {
	DecisionID string
	Region     string
	Candidates int
	Returned   int
	TopScore   float64
	Time       time.Time
}

// AssessmentEvent is published after every maintenance assessment.
type AssessmentEvent struct {
	DecisionID string
	VehicleID  string
	RiskScore  float64
	Tier       maintenance.PriorityTier
	Method     maintenance.Method
	Time       time.Time
}

// TrainEvent is published when a model retrain completes.
type TrainEvent struct {
	Model   string // "eta" or "maintenance"
	Samples int
	Err     error
	Time    time.Time
}

// Package eta predicts trip durations. A trained regressor is used when one is
// available and plausible; otherwise a deterministic rule-based estimate takes
// over. Results are always clamped to a sane range.
package eta

import (
	"errors"
	"math"
	"time"

	"github.com/neurofleetx/decision/core/geo"
	"github.com/neurofleetx/decision/core/logger"
	"github.com/neurofleetx/decision/core/model"
)

const (
	// MinMinutes and MaxMinutes bound every prediction.
	MinMinutes = 5
	MaxMinutes = 180
)

// ErrMissingDropoff is returned when the request has no dropoff coordinate.
var ErrMissingDropoff = errors.New("eta: missing dropoff coordinate")

// Request is the typed input for one prediction.
type Request struct {
	Trip      model.TripRequest
	Condition model.VehicleCondition
	// At is the request time used for traffic derivation and arrival stamping.
	At time.Time
	// Traffic optionally overrides the clock-derived congestion level.
	Traffic TrafficLevel
}

// Prediction is the result of one ETA computation.
type Prediction struct {
	ETAMinutes       float64
	DistanceKm       float64
	EstimatedArrival time.Time
	TrafficCondition string
	// Degraded is true when the trained model was absent or rejected and the
	// rule-based estimate was used instead.
	Degraded bool
}

// Engine combines the ML-backed and rule-based strategies.
type Engine struct {
	ml   Strategy
	rule RuleBased
	log  logger.Logger
}

// New returns an engine with the given optional ML strategy. A nil ml means
// every prediction uses the rule-based path.
func New(ml Strategy, speeds SpeedBands, log logger.Logger) *Engine {
	if speeds == (SpeedBands{}) {
		speeds = DefaultSpeedBands()
	}
	return &Engine{ml: ml, rule: RuleBased{Speeds: speeds}, log: log}
}

// Predict estimates the trip duration. A missing dropoff is an input error;
// a missing or implausible model silently degrades to the rule-based path.
func (e *Engine) Predict(req Request) (Prediction, error) {
	if req.Trip.Dropoff.IsZero() {
		return Prediction{}, ErrMissingDropoff
	}

	distance := geo.Distance(req.Trip.Pickup, req.Trip.Dropoff)

	factor, fromLevel := factorForLevel(req.Traffic)
	if !fromLevel {
		factor = FactorForHour(req.At.Hour())
	}

	in := Inputs{
		DistanceKm:    distance,
		Hour:          req.At.Hour(),
		Weekday:       int(req.At.Weekday()),
		TrafficFactor: factor,
		Condition:     req.Condition,
	}

	minutes, degraded := 0.0, true
	if e.ml != nil {
		if m, ok := e.ml.Estimate(in); ok {
			minutes, degraded = m, false
		}
	}
	if degraded {
		minutes, _ = e.rule.Estimate(in)
		if e.log != nil && e.ml != nil {
			e.log.Debugw("eta model unavailable or rejected, using rule-based estimate", map[string]any{
				"distance_km":    distance,
				"traffic_factor": factor,
			})
		}
	}

	minutes = clamp(minutes, MinMinutes, MaxMinutes)

	return Prediction{
		ETAMinutes:       round(minutes, 1),
		DistanceKm:       round(distance, 2),
		EstimatedArrival: req.At.Add(time.Duration(minutes * float64(time.Minute))),
		TrafficCondition: conditionLabel(factor),
		Degraded:         degraded && e.ml != nil,
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

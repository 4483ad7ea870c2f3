package app

import (
	"time"

	"github.com/neurofleetx/decision/core/eta"
	"github.com/neurofleetx/decision/core/events"
	"github.com/neurofleetx/decision/core/geo"
	"github.com/neurofleetx/decision/core/maintenance"
	"github.com/neurofleetx/decision/core/model"
	"github.com/neurofleetx/decision/core/predictor"
)

// TripSample is one completed trip used to train the ETA regressor.
type TripSample struct {
	Pickup      model.Coordinate
	Dropoff     model.Coordinate
	StartedAt   time.Time
	CompletedAt time.Time
	Condition   model.VehicleCondition
}

// ConditionSample is one labelled vehicle observation used to train the
// maintenance classifier. An empty Label is derived from the telemetry; a zero
// ObservedAt is stamped with the service clock.
type ConditionSample struct {
	Vehicle    model.VehicleSnapshot
	Label      string
	ObservedAt time.Time
}

// TrainETA fits a fresh regression model from trip history and swaps it in
// atomically. Samples with non-positive durations or a missing dropoff are
// skipped. In-flight predictions keep the model they already loaded.
func (s *Service) TrainETA(samples []TripSample) error {
	features := make([][]float64, 0, len(samples))
	targets := make([]float64, 0, len(samples))
	for _, ts := range samples {
		minutes := ts.CompletedAt.Sub(ts.StartedAt).Minutes()
		if minutes <= 0 || ts.Dropoff.IsZero() {
			continue
		}
		in := eta.Inputs{
			DistanceKm:    geo.Distance(ts.Pickup, ts.Dropoff),
			Hour:          ts.StartedAt.Hour(),
			Weekday:       int(ts.StartedAt.Weekday()),
			TrafficFactor: eta.FactorForHour(ts.StartedAt.Hour()),
			Condition:     ts.Condition,
		}
		features = append(features, eta.FeatureVector(in))
		targets = append(targets, minutes)
	}

	m, err := predictor.FitLinear(features, targets)
	s.bus.Publish(events.TrainEvent{Model: "eta", Samples: len(features), Err: err, Time: s.clock.Now()})
	if err != nil {
		s.log.Warnf("eta training failed on %d samples: %v", len(features), err)
		return err
	}
	s.etaModel.Store(m)
	s.log.Infof("eta model trained on %d samples", len(features))
	return nil
}

// TrainMaintenance fits a fresh risk classifier from labelled observations and
// swaps it in atomically.
func (s *Service) TrainMaintenance(samples []ConditionSample) error {
	features := make([][]float64, 0, len(samples))
	labels := make([]string, 0, len(samples))
	for _, cs := range samples {
		at := cs.ObservedAt
		if at.IsZero() {
			at = s.clock.Now()
		}
		label := cs.Label
		if label == "" {
			label = riskLabel(cs.Vehicle)
		}
		features = append(features, maintenance.ClassifierFeatures(cs.Vehicle, at))
		labels = append(labels, label)
	}

	m, err := predictor.FitCentroid(features, labels)
	s.bus.Publish(events.TrainEvent{Model: "maintenance", Samples: len(features), Err: err, Time: s.clock.Now()})
	if err != nil {
		s.log.Warnf("maintenance training failed on %d samples: %v", len(features), err)
		return err
	}
	s.maintModel.Store(m)
	s.log.Infof("maintenance model trained on %d samples", len(features))
	return nil
}

// riskLabel derives a training label from raw telemetry for unlabelled
// observations.
func riskLabel(v model.VehicleSnapshot) string {
	switch {
	case v.HealthScore < 70 || v.MileageKm > 100000:
		return "HIGH"
	case v.HealthScore < 85 || v.MileageKm > 50000:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

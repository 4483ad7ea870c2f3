// Package metrics records decision outcomes in pluggable sinks. Sinks observe
// the engines from the outside; scoring never depends on them.
package metrics

import (
	"github.com/neurofleetx/decision/core/events"
	"github.com/neurofleetx/decision/core/factory"
)

// DecisionSink receives one record per completed decision.
type DecisionSink interface {
	RecordEta(events.EtaEvent) error
	RecordRecommendation(events.RecommendationEvent) error
	RecordAssessment(events.AssessmentEvent) error
}

// TrainRecorder is implemented by sinks that also track retrains.
type TrainRecorder interface {
	RecordTrain(events.TrainEvent) error
}

// Config defines settings for decision sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
}

// NopSink discards all records.
type NopSink struct{}

func (NopSink) RecordEta(events.EtaEvent) error                       { return nil }
func (NopSink) RecordRecommendation(events.RecommendationEvent) error { return nil }
func (NopSink) RecordAssessment(events.AssessmentEvent) error         { return nil }
func (NopSink) RecordTrain(events.TrainEvent) error                   { return nil }

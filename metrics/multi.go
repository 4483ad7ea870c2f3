package metrics

import (
	"errors"

	"github.com/neurofleetx/decision/core/events"
)

// MultiSink fans records out to several sinks, collecting errors.
type MultiSink struct {
	sinks []DecisionSink
}

// NewMultiSink combines the given sinks into one.
func NewMultiSink(sinks ...DecisionSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordEta(e events.EtaEvent) error {
	var errs []error
	for _, s := range m.sinks {
		errs = append(errs, s.RecordEta(e))
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordRecommendation(e events.RecommendationEvent) error {
	var errs []error
	for _, s := range m.sinks {
		errs = append(errs, s.RecordRecommendation(e))
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordAssessment(e events.AssessmentEvent) error {
	var errs []error
	for _, s := range m.sinks {
		errs = append(errs, s.RecordAssessment(e))
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordTrain(e events.TrainEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if r, ok := s.(TrainRecorder); ok {
			errs = append(errs, r.RecordTrain(e))
		}
	}
	return errors.Join(errs...)
}

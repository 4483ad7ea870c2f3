package metrics

import (
	"context"

	"github.com/neurofleetx/decision/core/events"
	"github.com/neurofleetx/decision/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records metrics for
// decision events. It stops when the context is canceled.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, sink DecisionSink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				switch e := ev.(type) {
				case events.EtaEvent:
					_ = sink.RecordEta(e)
				case events.RecommendationEvent:
					_ = sink.RecordRecommendation(e)
				case events.AssessmentEvent:
					_ = sink.RecordAssessment(e)
				case events.TrainEvent:
					if r, ok := sink.(TrainRecorder); ok {
						_ = r.RecordTrain(e)
					}
				}
			}
		}
	}()
}

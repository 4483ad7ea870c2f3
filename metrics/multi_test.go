package metrics

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/neurofleetx/decision/core/events"
	"github.com/neurofleetx/decision/core/factory"
	"github.com/neurofleetx/decision/internal/eventbus"
)

// countingSink tallies the records it receives. Counts are guarded because the
// collector records from its own goroutine.
type countingSink struct {
	mu                        sync.Mutex
	eta, recs, assess, trains int
}

func (c *countingSink) RecordEta(events.EtaEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eta++
	return nil
}

func (c *countingSink) RecordRecommendation(events.RecommendationEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recs++
	return nil
}

func (c *countingSink) RecordAssessment(events.AssessmentEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.assess++
	return nil
}

func (c *countingSink) RecordTrain(events.TrainEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trains++
	return nil
}

func (c *countingSink) counts() (int, int, int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eta, c.recs, c.assess, c.trains
}

func TestMultiSink_FansOut(t *testing.T) {
	a := &countingSink{}
	b := &countingSink{}
	m := NewMultiSink(a, b)

	assert.NoError(t, m.RecordEta(events.EtaEvent{}))
	assert.NoError(t, m.RecordAssessment(events.AssessmentEvent{}))
	assert.NoError(t, m.RecordTrain(events.TrainEvent{}))

	aEta, _, aAssess, aTrains := a.counts()
	bEta, _, _, _ := b.counts()
	assert.Equal(t, 1, aEta)
	assert.Equal(t, 1, bEta)
	assert.Equal(t, 1, aAssess)
	assert.Equal(t, 1, aTrains)
}

func TestBuild_Defaults(t *testing.T) {
	sink, err := Build(Config{})
	assert.NoError(t, err)
	assert.IsType(t, NopSink{}, sink)
}

func TestBuild_UnknownType(t *testing.T) {
	_, err := Build(Config{Sinks: []factory.ModuleConfig{{Type: "bogus"}}})
	assert.Error(t, err)
}

func TestBuild_Nop(t *testing.T) {
	sink, err := Build(Config{Sinks: []factory.ModuleConfig{{Type: "nop"}}})
	assert.NoError(t, err)
	assert.IsType(t, NopSink{}, sink)
}

func TestEventCollector_RoutesEvents(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	sink := &countingSink{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartEventCollector(ctx, bus, sink)

	bus.Publish(events.EtaEvent{})
	bus.Publish(events.RecommendationEvent{})
	bus.Publish(events.AssessmentEvent{})

	assert.Eventually(t, func() bool {
		eta, recs, assess, _ := sink.counts()
		return eta == 1 && recs == 1 && assess == 1
	}, time.Second, 10*time.Millisecond)
}

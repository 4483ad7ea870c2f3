// Package app wires the decision engines, trained models, event bus and metric
// sinks into one service facade.
package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"

	"github.com/neurofleetx/decision/config"
	"github.com/neurofleetx/decision/core/eta"
	"github.com/neurofleetx/decision/core/events"
	"github.com/neurofleetx/decision/core/logger"
	"github.com/neurofleetx/decision/core/maintenance"
	"github.com/neurofleetx/decision/core/model"
	"github.com/neurofleetx/decision/core/predictor"
	"github.com/neurofleetx/decision/core/recommend"
	"github.com/neurofleetx/decision/core/region"
	infralogger "github.com/neurofleetx/decision/infra/logger"
	"github.com/neurofleetx/decision/internal/eventbus"
	"github.com/neurofleetx/decision/metrics"
)

// Service exposes the three decision operations plus model training. All
// methods are safe for concurrent use; retrains swap models atomically without
// blocking in-flight decisions.
type Service struct {
	log     logger.Logger
	clock   clockz.Clock
	bus     eventbus.EventBus
	sink    metrics.DecisionSink
	regions region.Resolver

	eta   *eta.Engine
	rec   *recommend.Engine
	maint *maintenance.Engine

	etaModel   predictor.Holder[predictor.LinearModel]
	maintModel predictor.Holder[predictor.CentroidModel]

	source CandidateSource
	cancel context.CancelFunc
}

// Option customises a Service at construction.
type Option func(*Service)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c clockz.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithSink replaces the metric sink built from the configuration.
func WithSink(sink metrics.DecisionSink) Option {
	return func(s *Service) { s.sink = sink }
}

// New builds a Service from the configuration. A nil cfg selects the defaults;
// a nil source leaves fleet-wide operations returning empty results.
func New(cfg *config.Config, source CandidateSource, log logger.Logger, opts ...Option) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = infralogger.NopLogger{}
	}
	if source == nil {
		source = NewStaticSource(nil)
	}

	s := &Service{
		log:     log,
		clock:   clockz.RealClock,
		bus:     eventbus.New(),
		regions: region.NewBoxResolver(cfg.Regions.Boxes),
		source:  source,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.sink == nil {
		sink, err := metrics.Build(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("build metric sinks: %w", err)
		}
		s.sink = sink
	}

	var ml eta.Strategy
	if cfg.Eta.UseModel {
		ml = eta.MLBacked{Provider: s.etaRegressor}
	}
	s.eta = eta.New(ml, cfg.Eta.Speeds, log)
	s.rec = recommend.New(cfg.Recommend.Weights, s.regions, log)
	if cfg.Maintenance.UseClassifier {
		s.maint = maintenance.NewWithClassifier(s.maintClassifier, log)
	} else {
		s.maint = maintenance.New(log)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	metrics.StartEventCollector(ctx, s.bus, s.sink)

	return s, nil
}

// Close stops the metric collector and releases the bus.
func (s *Service) Close() {
	s.cancel()
	s.bus.Close()
}

func (s *Service) etaRegressor() (predictor.Regressor, bool) {
	m, ok := s.etaModel.Load()
	if !ok {
		return nil, false
	}
	return m, true
}

func (s *Service) maintClassifier() (predictor.Classifier, bool) {
	m, ok := s.maintModel.Load()
	if !ok {
		return nil, false
	}
	return m, true
}

// PredictETA estimates the trip duration. A zero At is stamped with the
// service clock.
func (s *Service) PredictETA(req eta.Request) (eta.Prediction, error) {
	if req.At.IsZero() {
		req.At = s.clock.Now()
	}
	p, err := s.eta.Predict(req)
	if err != nil {
		return eta.Prediction{}, err
	}
	s.bus.Publish(events.EtaEvent{DecisionID: uuid.NewString(), Prediction: p, Time: req.At})
	s.log.Debugw("eta predicted", map[string]any{
		"minutes":  p.ETAMinutes,
		"km":       p.DistanceKm,
		"traffic":  p.TrafficCondition,
		"degraded": p.Degraded,
	})
	return p, nil
}

// Recommend ranks the fleet's candidate vehicles for the request.
func (s *Service) Recommend(ctx context.Context, req model.RecommendationRequest) ([]recommend.Recommendation, error) {
	candidates, err := s.source.Candidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}
	return s.RecommendAmong(req, candidates), nil
}

// RecommendAmong ranks a caller-supplied candidate set.
func (s *Service) RecommendAmong(req model.RecommendationRequest, candidates []model.VehicleSnapshot) []recommend.Recommendation {
	recs := s.rec.Recommend(req, candidates)

	pickupRegion := req.Region
	if pickupRegion == "" {
		pickupRegion = s.regions.Resolve(req.Pickup)
	}
	ev := events.RecommendationEvent{
		DecisionID: uuid.NewString(),
		Region:     pickupRegion,
		Candidates: len(candidates),
		Returned:   len(recs),
		Time:       s.clock.Now(),
	}
	if len(recs) > 0 {
		ev.TopScore = recs[0].Score
	}
	s.bus.Publish(ev)
	return recs
}

// AssessVehicle evaluates one vehicle's maintenance risk at the current time.
func (s *Service) AssessVehicle(v model.VehicleSnapshot) maintenance.RiskAssessment {
	res := s.maint.Assess(v, s.clock.Now())
	s.bus.Publish(events.AssessmentEvent{
		DecisionID: uuid.NewString(),
		VehicleID:  res.VehicleID,
		RiskScore:  res.RiskScore,
		Tier:       res.Tier,
		Method:     res.Method,
		Time:       s.clock.Now(),
	})
	return res
}

// AssessFleet evaluates every candidate vehicle.
func (s *Service) AssessFleet(ctx context.Context) ([]maintenance.RiskAssessment, error) {
	candidates, err := s.source.Candidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}
	out := make([]maintenance.RiskAssessment, 0, len(candidates))
	for _, v := range candidates {
		out = append(out, s.AssessVehicle(v))
	}
	return out, nil
}

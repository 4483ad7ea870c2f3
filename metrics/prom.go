package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/neurofleetx/decision/core/events"
)

// PromSink records decision events in Prometheus metrics.
type PromSink struct {
	etaTotal    *prometheus.CounterVec
	etaMinutes  prometheus.Histogram
	recsTotal   *prometheus.CounterVec
	assessTotal *prometheus.CounterVec
	riskScore   prometheus.Histogram
	trainsTotal *prometheus.CounterVec
}

// NewPromSink registers decision metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. Collectors that
// are already registered are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	s := &PromSink{
		etaTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eta_predictions_total",
			Help: "Total number of ETA predictions",
		}, []string{"traffic", "degraded"}),
		etaMinutes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "eta_minutes",
			Help:    "Predicted trip durations in minutes",
			Buckets: []float64{5, 10, 20, 30, 60, 90, 120, 180},
		}),
		recsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vehicle_recommendations_total",
			Help: "Total number of recommendation requests",
		}, []string{"region"}),
		assessTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "maintenance_assessments_total",
			Help: "Total number of maintenance assessments",
		}, []string{"tier", "method"}),
		riskScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "maintenance_risk_score",
			Help:    "Maintenance risk scores",
			Buckets: []float64{10, 20, 35, 40, 60, 80, 100},
		}),
		trainsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "model_trainings_total",
			Help: "Total number of model retrains",
		}, []string{"model", "success"}),
	}

	for _, c := range []prometheus.Collector{s.etaTotal, s.etaMinutes, s.recsTotal, s.assessTotal, s.riskScore, s.trainsTotal} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return nil, err
			}
		}
	}
	return s, nil
}

// RecordEta counts the prediction and observes its duration.
func (s *PromSink) RecordEta(e events.EtaEvent) error {
	s.etaTotal.WithLabelValues(e.Prediction.TrafficCondition, strconv.FormatBool(e.Prediction.Degraded)).Inc()
	s.etaMinutes.Observe(e.Prediction.ETAMinutes)
	return nil
}

// RecordRecommendation counts the request by pickup region.
func (s *PromSink) RecordRecommendation(e events.RecommendationEvent) error {
	s.recsTotal.WithLabelValues(e.Region).Inc()
	return nil
}

// RecordAssessment counts the assessment and observes its risk score.
func (s *PromSink) RecordAssessment(e events.AssessmentEvent) error {
	s.assessTotal.WithLabelValues(string(e.Tier), string(e.Method)).Inc()
	s.riskScore.Observe(e.RiskScore)
	return nil
}

// RecordTrain counts retrain completions.
func (s *PromSink) RecordTrain(e events.TrainEvent) error {
	s.trainsTotal.WithLabelValues(e.Model, strconv.FormatBool(e.Err == nil)).Inc()
	return nil
}

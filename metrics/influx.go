package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/neurofleetx/decision/core/events"
	"github.com/neurofleetx/decision/infra/logger"
)

// InfluxConfig holds the InfluxDB connection settings.
type InfluxConfig struct {
	URL    string `json:"url"`
	Token  string `json:"token"`
	Org    string `json:"org"`
	Bucket string `json:"bucket"`
}

// InfluxSink writes decision events to an InfluxDB instance using the official
// client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg InfluxConfig) *InfluxSink {
	base := strings.TrimSuffix(cfg.URL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.Token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns a
// NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg InfluxConfig) DecisionSink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return NopSink{}
	}
	return sink
}

// RecordEta writes the prediction as a point.
func (s *InfluxSink) RecordEta(e events.EtaEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("eta_prediction").
		AddTag("traffic", e.Prediction.TrafficCondition).
		AddTag("degraded", strconv.FormatBool(e.Prediction.Degraded)).
		AddField("eta_minutes", e.Prediction.ETAMinutes).
		AddField("distance_km", e.Prediction.DistanceKm).
		AddField("decision_id", e.DecisionID).
		SetTime(e.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordRecommendation writes the request summary as a point.
func (s *InfluxSink) RecordRecommendation(e events.RecommendationEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("recommendation").
		AddTag("region", e.Region).
		AddField("candidates", e.Candidates).
		AddField("returned", e.Returned).
		AddField("top_score", e.TopScore).
		AddField("decision_id", e.DecisionID).
		SetTime(e.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordAssessment writes the assessment as a point.
func (s *InfluxSink) RecordAssessment(e events.AssessmentEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("maintenance_assessment").
		AddTag("tier", string(e.Tier)).
		AddTag("method", string(e.Method)).
		AddTag("vehicle_id", e.VehicleID).
		AddField("risk_score", e.RiskScore).
		AddField("decision_id", e.DecisionID).
		SetTime(e.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

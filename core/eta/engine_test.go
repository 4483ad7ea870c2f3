package eta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurofleetx/decision/core/model"
	"github.com/neurofleetx/decision/core/predictor"
)

// stubRegressor returns a fixed value for every feature vector.
type stubRegressor struct {
	out float64
	err error
}

func (s stubRegressor) Predict([]float64) (float64, error) { return s.out, s.err }

func provide(r predictor.Regressor) func() (predictor.Regressor, bool) {
	return func() (predictor.Regressor, bool) { return r, true }
}

// mumbaiTrip is roughly 4.3 km across the city.
var mumbaiTrip = model.TripRequest{
	Pickup:  model.Coordinate{Lat: 19.0760, Lon: 72.8777},
	Dropoff: model.Coordinate{Lat: 19.1136, Lon: 72.8697},
}

func at(hour int) time.Time {
	return time.Date(2025, time.March, 3, hour, 15, 0, 0, time.UTC)
}

func TestPredict_MissingDropoff(t *testing.T) {
	e := New(nil, SpeedBands{}, nil)
	_, err := e.Predict(Request{Trip: model.TripRequest{Pickup: mumbaiTrip.Pickup}, At: at(9)})
	assert.ErrorIs(t, err, ErrMissingDropoff)
}

func TestPredict_RuleBasedBands(t *testing.T) {
	e := New(nil, SpeedBands{}, nil)

	cases := []struct {
		name      string
		hour      int
		condition string
	}{
		{"morning-peak", 9, "Heavy"},
		{"evening-peak", 19, "Heavy"},
		{"midday", 13, "Moderate"},
		{"night", 2, "Light"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := e.Predict(Request{Trip: mumbaiTrip, At: at(tc.hour)})
			require.NoError(t, err)
			assert.Equal(t, tc.condition, p.TrafficCondition)
			assert.GreaterOrEqual(t, p.ETAMinutes, float64(MinMinutes))
			assert.LessOrEqual(t, p.ETAMinutes, float64(MaxMinutes))
		})
	}
}

func TestPredict_HeavyTrafficFiftyKm(t *testing.T) {
	// 50 km at the 20 km/h heavy-traffic band is 150 minutes, inside the clamp.
	in := Inputs{DistanceKm: 50, TrafficFactor: 1.5}
	minutes, ok := RuleBased{Speeds: DefaultSpeedBands()}.Estimate(in)
	require.True(t, ok)
	assert.InDelta(t, 150, minutes, 1e-9)
}

func TestPredict_ClampCeiling(t *testing.T) {
	e := New(nil, SpeedBands{}, nil)
	longHaul := model.TripRequest{
		Pickup:  model.Coordinate{Lat: 19.0760, Lon: 72.8777},
		Dropoff: model.Coordinate{Lat: 28.6139, Lon: 77.2090}, // ~1150 km
	}
	p, err := e.Predict(Request{Trip: longHaul, At: at(9)})
	require.NoError(t, err)
	assert.Equal(t, float64(MaxMinutes), p.ETAMinutes)
}

func TestPredict_ClampFloor(t *testing.T) {
	e := New(nil, SpeedBands{}, nil)
	short := model.TripRequest{
		Pickup:  model.Coordinate{Lat: 19.0760, Lon: 72.8777},
		Dropoff: model.Coordinate{Lat: 19.0761, Lon: 72.8778},
	}
	p, err := e.Predict(Request{Trip: short, At: at(2)})
	require.NoError(t, err)
	assert.Equal(t, float64(MinMinutes), p.ETAMinutes)
}

func TestPredict_ModelUsedWhenPlausible(t *testing.T) {
	e := New(MLBacked{Provider: provide(stubRegressor{out: 23.4})}, SpeedBands{}, nil)
	p, err := e.Predict(Request{Trip: mumbaiTrip, At: at(9)})
	require.NoError(t, err)
	assert.Equal(t, 23.4, p.ETAMinutes)
	assert.False(t, p.Degraded)
}

func TestPredict_ImplausibleModelRejected(t *testing.T) {
	// A 4.3 km trip with a 200 minute prediction implies well under 6 km/h.
	e := New(MLBacked{Provider: provide(stubRegressor{out: 200})}, SpeedBands{}, nil)
	p, err := e.Predict(Request{Trip: mumbaiTrip, At: at(2)})
	require.NoError(t, err)
	assert.True(t, p.Degraded)
	// Light traffic at 45 km/h over ~4.3 km.
	assert.InDelta(t, 5.7, p.ETAMinutes, 1.0)
}

func TestPredict_UntrainedModelDegrades(t *testing.T) {
	ml := MLBacked{Provider: func() (predictor.Regressor, bool) { return nil, false }}
	e := New(ml, SpeedBands{}, nil)
	p, err := e.Predict(Request{Trip: mumbaiTrip, At: at(13)})
	require.NoError(t, err)
	assert.True(t, p.Degraded)
}

func TestPredict_ExplicitTrafficLevelWins(t *testing.T) {
	e := New(nil, SpeedBands{}, nil)
	// 2 AM is a light window, but the caller reports HIGH congestion.
	p, err := e.Predict(Request{Trip: mumbaiTrip, At: at(2), Traffic: TrafficHigh})
	require.NoError(t, err)
	assert.Equal(t, "Heavy", p.TrafficCondition)
}

func TestPredict_ArrivalStamp(t *testing.T) {
	e := New(MLBacked{Provider: provide(stubRegressor{out: 30})}, SpeedBands{}, nil)
	now := at(9)
	p, err := e.Predict(Request{Trip: mumbaiTrip, At: now})
	require.NoError(t, err)
	assert.Equal(t, now.Add(30*time.Minute), p.EstimatedArrival)
}

func TestPredict_Idempotent(t *testing.T) {
	e := New(nil, SpeedBands{}, nil)
	req := Request{Trip: mumbaiTrip, At: at(18)}
	a, err := e.Predict(req)
	require.NoError(t, err)
	b, err := e.Predict(req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFactorForLevel(t *testing.T) {
	for level, want := range map[TrafficLevel]float64{TrafficLow: 1.2, TrafficMedium: 1.5, TrafficHigh: 1.8} {
		got, ok := factorForLevel(level)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := factorForLevel(TrafficUnset)
	assert.False(t, ok)
}

func TestFeatureVector(t *testing.T) {
	v := FeatureVector(Inputs{
		DistanceKm:    12.5,
		Hour:          9,
		Weekday:       1,
		TrafficFactor: 1.5,
		Condition:     model.VehicleCondition{HealthScore: 80, IsElectric: true},
	})
	assert.Equal(t, []float64{12.5, 9, 1, 1.5, 0.8, 1}, v)
}

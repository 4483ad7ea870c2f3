package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurofleetx/decision/core/model"
)

var mumbaiPickup = model.Coordinate{Lat: 19.0760, Lon: 72.8777}

func vehicle(id, reg string, loc model.Coordinate) model.VehicleSnapshot {
	return model.VehicleSnapshot{
		ID:          id,
		Type:        model.TypeSedan,
		Capacity:    4,
		FuelLevel:   80,
		HealthScore: 85,
		Location:    loc,
		Region:      reg,
		Status:      model.StatusAvailable,
	}
}

func TestRecommend_EmptyCandidates(t *testing.T) {
	e := New(Weights{}, nil, nil)
	got := e.Recommend(model.RecommendationRequest{Pickup: mumbaiPickup}, nil)
	assert.Empty(t, got)
}

func TestRecommend_RegionDominance(t *testing.T) {
	// A same-region candidate with mediocre health must outrank a
	// different-region candidate with perfect health at equal distance.
	local := vehicle("local", "MH", mumbaiPickup)
	local.HealthScore = 60
	remote := vehicle("remote", "KA", mumbaiPickup)
	remote.HealthScore = 100

	e := New(Weights{}, nil, nil)
	got := e.Recommend(model.RecommendationRequest{Pickup: mumbaiPickup, Region: "MH"}, []model.VehicleSnapshot{remote, local})
	require.Len(t, got, 2)
	assert.Equal(t, "local", got[0].Vehicle.ID)
	assert.True(t, got[0].RegionMatch)
	assert.False(t, got[1].RegionMatch)
	assert.Greater(t, got[0].Score, got[1].Score)
}

func TestRecommend_StableTieBreak(t *testing.T) {
	a := vehicle("first", "MH", mumbaiPickup)
	b := vehicle("second", "MH", mumbaiPickup)

	e := New(Weights{}, nil, nil)
	got := e.Recommend(model.RecommendationRequest{Pickup: mumbaiPickup, Region: "MH"}, []model.VehicleSnapshot{a, b})
	require.Len(t, got, 2)
	assert.Equal(t, got[0].Score, got[1].Score)
	assert.Equal(t, "first", got[0].Vehicle.ID)
	assert.Equal(t, "second", got[1].Vehicle.ID)
}

func TestRecommend_TopNCap(t *testing.T) {
	var fleet []model.VehicleSnapshot
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		fleet = append(fleet, vehicle(id, "MH", mumbaiPickup))
	}
	e := New(Weights{}, nil, nil)

	got := e.Recommend(model.RecommendationRequest{Pickup: mumbaiPickup, Region: "MH"}, fleet)
	assert.Len(t, got, DefaultTopN)

	got = e.Recommend(model.RecommendationRequest{Pickup: mumbaiPickup, Region: "MH", TopN: 2}, fleet)
	assert.Len(t, got, 2)
}

func TestRecommend_RegionAutoDetect(t *testing.T) {
	local := vehicle("local", "MH", mumbaiPickup)
	e := New(Weights{}, nil, nil)
	// No region supplied: the Mumbai pickup resolves to MH.
	got := e.Recommend(model.RecommendationRequest{Pickup: mumbaiPickup}, []model.VehicleSnapshot{local})
	require.Len(t, got, 1)
	assert.True(t, got[0].RegionMatch)
}

func TestRecommend_UnknownRegionNeverMatches(t *testing.T) {
	atlantic := model.Coordinate{Lat: -30, Lon: -30}
	stray := vehicle("stray", "UNKNOWN", atlantic)
	e := New(Weights{}, nil, nil)
	got := e.Recommend(model.RecommendationRequest{Pickup: atlantic}, []model.VehicleSnapshot{stray})
	require.Len(t, got, 1)
	assert.False(t, got[0].RegionMatch)
	assert.Equal(t, float64(regionMismatchMalus), got[0].Breakdown.Get("region_match_bonus"))
}

func TestRecommend_ElectricPreference(t *testing.T) {
	ev := vehicle("ev", "MH", mumbaiPickup)
	ev.IsElectric = true
	ev.BatteryLevel = 80
	ev.FuelLevel = 0
	ice := vehicle("ice", "MH", mumbaiPickup)
	ice.FuelLevel = 80

	e := New(Weights{}, nil, nil)
	got := e.Recommend(model.RecommendationRequest{Pickup: mumbaiPickup, Region: "MH", PreferElectric: true}, []model.VehicleSnapshot{ice, ev})
	require.Len(t, got, 2)
	assert.Equal(t, "ev", got[0].Vehicle.ID)
	assert.Equal(t, float64(electricBonus), got[0].Breakdown.Get("electric_adjustment"))
	assert.Equal(t, float64(electricMalus), got[1].Breakdown.Get("electric_adjustment"))
	assert.InDelta(t, 30, got[0].Score-got[1].Score, 1e-9)
}

func TestRecommend_Filters(t *testing.T) {
	small := vehicle("small", "MH", mumbaiPickup)
	small.Capacity = 2
	van := vehicle("van", "MH", mumbaiPickup)
	van.Type = model.TypeVan
	van.Capacity = 8
	busy := vehicle("busy", "MH", mumbaiPickup)
	busy.Status = model.StatusInUse

	e := New(Weights{}, nil, nil)
	fleet := []model.VehicleSnapshot{small, van, busy}

	got := e.Recommend(model.RecommendationRequest{Pickup: mumbaiPickup, Region: "MH", MinCapacity: 4}, fleet)
	require.Len(t, got, 1)
	assert.Equal(t, "van", got[0].Vehicle.ID)

	got = e.Recommend(model.RecommendationRequest{Pickup: mumbaiPickup, Region: "MH", PreferredType: model.TypeVan}, fleet)
	require.Len(t, got, 1)
	assert.Equal(t, "van", got[0].Vehicle.ID)
}

func TestRecommend_BreakdownAndReason(t *testing.T) {
	v := vehicle("v1", "MH", model.Coordinate{Lat: 19.0800, Lon: 72.8800})
	v.HealthScore = 95
	v.IsElectric = true
	v.BatteryLevel = 90

	e := New(Weights{}, nil, nil)
	got := e.Recommend(model.RecommendationRequest{Pickup: mumbaiPickup, Region: "MH"}, []model.VehicleSnapshot{v})
	require.Len(t, got, 1)

	rec := got[0]
	assert.Equal(t, float64(regionMatchBonus), rec.Breakdown.Get("region_match_bonus"))
	assert.Equal(t, 100.0, rec.Breakdown.Get("capacity_score"))
	assert.Equal(t, 95.0, rec.Breakdown.Get("health_score"))
	assert.Equal(t, 90.0, rec.Breakdown.Get("energy_score"))
	assert.Contains(t, rec.Reason, "Available in Maharashtra")
	assert.Contains(t, rec.Reason, "Very close to pickup")
	assert.Contains(t, rec.Reason, "Excellent condition")
	assert.Contains(t, rec.Reason, "Eco-friendly EV")
}

func TestRecommend_ClampsMalformedInputs(t *testing.T) {
	v := vehicle("odd", "MH", mumbaiPickup)
	v.HealthScore = 140
	v.FuelLevel = -10

	e := New(Weights{}, nil, nil)
	got := e.Recommend(model.RecommendationRequest{Pickup: mumbaiPickup, Region: "MH"}, []model.VehicleSnapshot{v})
	require.Len(t, got, 1)
	assert.Equal(t, 100.0, got[0].Breakdown.Get("health_score"))
	assert.Equal(t, 0.0, got[0].Breakdown.Get("energy_score"))
}

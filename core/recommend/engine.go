// Package recommend ranks candidate vehicles for a pickup request using
// weighted multi-factor scoring. Same-region vehicles dominate the ranking by
// design: the region term outweighs any realistic spread of the other factors.
package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/neurofleetx/decision/core/geo"
	"github.com/neurofleetx/decision/core/logger"
	"github.com/neurofleetx/decision/core/model"
	"github.com/neurofleetx/decision/core/region"
)

// DefaultTopN caps the result list when the request does not say otherwise.
const DefaultTopN = 5

const (
	regionMatchBonus    = 100
	regionMismatchMalus = -50
	electricBonus       = 20
	electricMalus       = -10
)

// Weights holds the factor weights of the scoring formula. They are expected
// to sum to 1.0; the electric adjustment is additive on top.
type Weights struct {
	Region   float64 `json:"region"`
	Distance float64 `json:"distance"`
	Capacity float64 `json:"capacity"`
	Health   float64 `json:"health"`
	Energy   float64 `json:"energy"`
	Type     float64 `json:"type"`
}

// DefaultWeights is the canonical region-priority weighting.
func DefaultWeights() Weights {
	return Weights{Region: 0.40, Distance: 0.25, Capacity: 0.15, Health: 0.12, Energy: 0.05, Type: 0.03}
}

var typeBonus = map[model.VehicleType]float64{
	model.TypeSedan:  10,
	model.TypeSUV:    15,
	model.TypeVan:    5,
	model.TypeLuxury: 20,
}

// Recommendation is one ranked candidate with its audit trail.
type Recommendation struct {
	Vehicle     model.VehicleSnapshot
	Score       float64
	DistanceKm  float64
	RegionMatch bool
	Breakdown   model.ScoreBreakdown
	Reason      string
}

// Engine scores and ranks vehicle snapshots.
type Engine struct {
	weights Weights
	regions region.Resolver
	log     logger.Logger
}

// New returns an engine using the given weights and region resolver. Zero
// weights select the defaults; a nil resolver falls back to the compiled-in
// bounding boxes.
func New(w Weights, r region.Resolver, log logger.Logger) *Engine {
	if w == (Weights{}) {
		w = DefaultWeights()
	}
	if r == nil {
		r = region.NewBoxResolver(nil)
	}
	return &Engine{weights: w, regions: r, log: log}
}

// Recommend ranks the candidates against the request and returns at most TopN
// results. An empty candidate set yields an empty slice, not an error.
func (e *Engine) Recommend(req model.RecommendationRequest, candidates []model.VehicleSnapshot) []Recommendation {
	pickupRegion := req.Region
	if pickupRegion == "" {
		pickupRegion = e.regions.Resolve(req.Pickup)
		if e.log != nil {
			e.log.Debugf("auto-detected pickup region %s", pickupRegion)
		}
	}

	passengers := req.Passengers
	if passengers <= 0 {
		passengers = 1
	}

	results := make([]Recommendation, 0, len(candidates))
	for _, v := range candidates {
		if !eligible(v, req) {
			continue
		}
		results = append(results, e.score(v, req, pickupRegion, passengers))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	topN := req.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	if len(results) > topN {
		results = results[:topN]
	}
	return results
}

// eligible applies the hard filters before any scoring.
func eligible(v model.VehicleSnapshot, req model.RecommendationRequest) bool {
	if v.Status != "" && v.Status != model.StatusAvailable {
		return false
	}
	if req.MinCapacity > 0 && v.Capacity < req.MinCapacity {
		return false
	}
	if req.PreferredType != "" && v.Type != req.PreferredType {
		return false
	}
	return true
}

func (e *Engine) score(v model.VehicleSnapshot, req model.RecommendationRequest, pickupRegion string, passengers int) Recommendation {
	match := v.Region != "" && v.Region == pickupRegion && pickupRegion != region.Unknown
	regionScore := float64(regionMismatchMalus)
	if match {
		regionScore = regionMatchBonus
	}

	distance := geo.Distance(req.Pickup, v.Location)
	distanceScore := math.Max(0, 100-distance*5)

	capacityScore := 50.0
	if v.Capacity >= passengers {
		capacityScore = 100
	}

	healthScore := clampPercent(v.HealthScore)
	energyScore := clampPercent(v.EnergyLevel())

	var electricAdj float64
	if req.PreferElectric {
		if v.IsElectric {
			electricAdj = electricBonus
		} else {
			electricAdj = electricMalus
		}
	}

	total := regionScore*e.weights.Region +
		distanceScore*e.weights.Distance +
		capacityScore*e.weights.Capacity +
		healthScore*e.weights.Health +
		energyScore*e.weights.Energy +
		typeBonus[v.Type]*e.weights.Type +
		electricAdj

	breakdown := model.ScoreBreakdown{
		{Name: "region_match_bonus", Value: regionScore},
		{Name: "distance_score", Value: round(distanceScore, 1)},
		{Name: "capacity_score", Value: capacityScore},
		{Name: "health_score", Value: healthScore},
		{Name: "energy_score", Value: round(energyScore, 1)},
		{Name: "type_bonus", Value: typeBonus[v.Type]},
		{Name: "electric_adjustment", Value: electricAdj},
	}

	rec := Recommendation{
		Vehicle:     v,
		Score:       round(total, 2),
		DistanceKm:  round(distance, 2),
		RegionMatch: match,
		Breakdown:   breakdown,
	}
	rec.Reason = reason(rec, pickupRegion)
	return rec
}

// reason synthesises the presentation string: region first, then proximity,
// condition and eco-friendliness. It never influences the score.
func reason(rec Recommendation, pickupRegion string) string {
	parts := make([]string, 0, 4)
	if rec.RegionMatch {
		parts = append(parts, fmt.Sprintf("Available in %s", region.Name(pickupRegion)))
	} else {
		parts = append(parts, fmt.Sprintf("From %s (outside your region)", region.Name(rec.Vehicle.Region)))
	}
	if rec.DistanceKm < 2 {
		parts = append(parts, "Very close to pickup")
	} else if rec.DistanceKm < 5 {
		parts = append(parts, "Nearby")
	}
	if rec.Vehicle.HealthScore > 90 {
		parts = append(parts, "Excellent condition")
	}
	if rec.Vehicle.IsElectric {
		parts = append(parts, "Eco-friendly EV")
	}
	return strings.Join(parts, ", ")
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

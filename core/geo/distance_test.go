package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neurofleetx/decision/core/model"
)

func TestDistance_Symmetric(t *testing.T) {
	mumbai := model.Coordinate{Lat: 19.0760, Lon: 72.8777}
	pune := model.Coordinate{Lat: 18.5204, Lon: 73.8567}

	ab := Distance(mumbai, pune)
	ba := Distance(pune, mumbai)
	assert.Equal(t, ab, ba)
	// Mumbai to Pune is roughly 120 km as the crow flies.
	assert.InDelta(t, 120, ab, 5)
}

func TestDistance_SamePoint(t *testing.T) {
	p := model.Coordinate{Lat: 28.6139, Lon: 77.2090}
	assert.Equal(t, 0.0, Distance(p, p))
}

func TestDistance_KnownPairs(t *testing.T) {
	cases := []struct {
		name string
		a, b model.Coordinate
		want float64
		tol  float64
	}{
		{"delhi-mumbai", model.Coordinate{Lat: 28.6139, Lon: 77.2090}, model.Coordinate{Lat: 19.0760, Lon: 72.8777}, 1150, 20},
		{"bangalore-chennai", model.Coordinate{Lat: 12.9716, Lon: 77.5946}, model.Coordinate{Lat: 13.0827, Lon: 80.2707}, 290, 10},
		{"one-degree-lat", model.Coordinate{Lat: 0, Lon: 0}, model.Coordinate{Lat: 1, Lon: 0}, 111.2, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Distance(tc.a, tc.b), tc.tol)
		})
	}
}

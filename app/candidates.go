package app

import (
	"context"
	"sync"

	"github.com/neurofleetx/decision/core/model"
)

// CandidateSource supplies the vehicle snapshots considered by fleet-wide
// operations. Implementations typically front a fleet registry or telemetry
// store.
type CandidateSource interface {
	Candidates(ctx context.Context) ([]model.VehicleSnapshot, error)
}

// StaticSource serves a fixed, mutable set of snapshots from memory. It is the
// source used by the CLI and by tests.
type StaticSource struct {
	mu       sync.RWMutex
	vehicles []model.VehicleSnapshot
}

// NewStaticSource copies the given snapshots into a source.
func NewStaticSource(vehicles []model.VehicleSnapshot) *StaticSource {
	s := &StaticSource{}
	s.Replace(vehicles)
	return s
}

// Candidates returns a copy of the current set.
func (s *StaticSource) Candidates(context.Context) ([]model.VehicleSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.VehicleSnapshot, len(s.vehicles))
	copy(out, s.vehicles)
	return out, nil
}

// Replace swaps the whole set.
func (s *StaticSource) Replace(vehicles []model.VehicleSnapshot) {
	cp := make([]model.VehicleSnapshot, len(vehicles))
	copy(cp, vehicles)
	s.mu.Lock()
	s.vehicles = cp
	s.mu.Unlock()
}

// Package predictor holds the trainable statistical models the engines can
// delegate to. Models follow a train-once-then-read-many discipline: training
// produces an immutable model that is swapped into a Holder on completion, so
// concurrent scorers read either the old or the new parameters, never a mix.
package predictor

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrNotTrained indicates the model has no parameters yet.
	ErrNotTrained = errors.New("predictor: model not trained")
	// ErrDimension indicates a feature vector of unexpected length.
	ErrDimension = errors.New("predictor: feature dimension mismatch")
	// ErrInsufficientData indicates too few samples to fit the model.
	ErrInsufficientData = errors.New("predictor: insufficient training data")
)

// Regressor predicts a numeric target from a feature vector.
type Regressor interface {
	Predict(features []float64) (float64, error)
}

// Classifier predicts a class label with per-class probabilities.
type Classifier interface {
	Predict(features []float64) (label string, probs map[string]float64, err error)
}

// Holder publishes a trained model to concurrent readers with an atomic swap.
// The zero value holds no model.
type Holder[T any] struct {
	ptr atomic.Pointer[T]
}

// Load returns the current model, or false when none has been stored.
func (h *Holder[T]) Load() (*T, bool) {
	m := h.ptr.Load()
	return m, m != nil
}

// Store replaces the current model. Readers in flight keep the model they
// already loaded.
func (h *Holder[T]) Store(m *T) {
	h.ptr.Store(m)
}

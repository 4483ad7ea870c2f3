package predictor

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CentroidModel classifies feature vectors by distance to per-class centroids
// in standardised feature space. Probabilities come from a softmax over the
// negated distances. It implements Classifier.
type CentroidModel struct {
	labels    []string
	centroids [][]float64
	means     []float64
	stds      []float64
}

// FitCentroid fits one centroid per distinct label. Labels keep their first
// appearance order so probability maps are reproducible.
func FitCentroid(features [][]float64, labels []string) (*CentroidModel, error) {
	n := len(features)
	if n == 0 || n != len(labels) {
		return nil, ErrInsufficientData
	}
	d := len(features[0])
	if d == 0 {
		return nil, ErrInsufficientData
	}
	for _, row := range features {
		if len(row) != d {
			return nil, ErrDimension
		}
	}

	means, stds := columnStats(features, d)

	order := make([]string, 0, 4)
	sums := make(map[string][]float64)
	counts := make(map[string]int)
	for i, row := range features {
		lbl := labels[i]
		if _, ok := sums[lbl]; !ok {
			order = append(order, lbl)
			sums[lbl] = make([]float64, d)
		}
		for j, v := range row {
			sums[lbl][j] += zscore(v, means[j], stds[j])
		}
		counts[lbl]++
	}
	if len(order) < 2 {
		return nil, ErrInsufficientData
	}

	m := &CentroidModel{labels: order, means: means, stds: stds}
	for _, lbl := range order {
		c := sums[lbl]
		floats.Scale(1/float64(counts[lbl]), c)
		m.centroids = append(m.centroids, c)
	}
	return m, nil
}

// Predict returns the nearest-centroid label and the softmax probability for
// every known label.
func (m *CentroidModel) Predict(features []float64) (string, map[string]float64, error) {
	if m == nil {
		return "", nil, ErrNotTrained
	}
	if len(features) != len(m.means) {
		return "", nil, ErrDimension
	}

	z := make([]float64, len(features))
	for j, v := range features {
		z[j] = zscore(v, m.means[j], m.stds[j])
	}

	neg := make([]float64, len(m.labels))
	for i, c := range m.centroids {
		neg[i] = -floats.Distance(z, c, 2)
	}
	// Softmax over negated distances, shifted for numerical stability.
	max := floats.Max(neg)
	var sum float64
	exps := make([]float64, len(neg))
	for i, v := range neg {
		exps[i] = math.Exp(v - max)
		sum += exps[i]
	}

	probs := make(map[string]float64, len(m.labels))
	best := 0
	for i, lbl := range m.labels {
		probs[lbl] = exps[i] / sum
		if exps[i] > exps[best] {
			best = i
		}
	}
	return m.labels[best], probs, nil
}

// Labels returns the known class labels in training order.
func (m *CentroidModel) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)
	return out
}

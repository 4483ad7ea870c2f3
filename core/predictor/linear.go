package predictor

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// LinearModel is an immutable least-squares regression fit over standardised
// features. It implements Regressor.
type LinearModel struct {
	weights   []float64 // per standardised feature
	intercept float64
	means     []float64
	stds      []float64
}

// FitLinear fits a linear model to the samples by QR-decomposed least squares.
// Features are standardised to zero mean and unit variance before the solve,
// matching the scaler the targets were produced with.
func FitLinear(features [][]float64, targets []float64) (*LinearModel, error) {
	n := len(features)
	if n == 0 || n != len(targets) {
		return nil, ErrInsufficientData
	}
	d := len(features[0])
	if d == 0 || n < d+1 {
		return nil, ErrInsufficientData
	}
	for _, row := range features {
		if len(row) != d {
			return nil, ErrDimension
		}
	}

	means, stds := columnStats(features, d)

	// Design matrix with a leading intercept column.
	x := mat.NewDense(n, d+1, nil)
	y := mat.NewDense(n, 1, nil)
	for i, row := range features {
		x.Set(i, 0, 1)
		for j, v := range row {
			x.Set(i, j+1, zscore(v, means[j], stds[j]))
		}
		y.Set(i, 0, targets[i])
	}

	var qr mat.QR
	qr.Factorize(x)
	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, y); err != nil {
		return nil, err
	}

	m := &LinearModel{
		weights:   make([]float64, d),
		intercept: beta.At(0, 0),
		means:     means,
		stds:      stds,
	}
	for j := 0; j < d; j++ {
		m.weights[j] = beta.At(j+1, 0)
	}
	return m, nil
}

// Predict returns the fitted value for the feature vector.
func (m *LinearModel) Predict(features []float64) (float64, error) {
	if m == nil {
		return 0, ErrNotTrained
	}
	if len(features) != len(m.weights) {
		return 0, ErrDimension
	}
	out := m.intercept
	for j, v := range features {
		out += m.weights[j] * zscore(v, m.means[j], m.stds[j])
	}
	return out, nil
}

func columnStats(features [][]float64, d int) (means, stds []float64) {
	means = make([]float64, d)
	stds = make([]float64, d)
	col := make([]float64, len(features))
	for j := 0; j < d; j++ {
		for i, row := range features {
			col[i] = row[j]
		}
		means[j], stds[j] = stat.MeanStdDev(col, nil)
	}
	return means, stds
}

func zscore(v, mean, std float64) float64 {
	if std == 0 {
		return 0
	}
	return (v - mean) / std
}

package model

// Factor is one named contribution to an aggregate score.
type Factor struct {
	Name  string
	Value float64
}

// ScoreBreakdown lists the factors behind a score in a stable order so results
// stay auditable.
type ScoreBreakdown []Factor

// Get returns the value of the named factor, or zero when absent.
func (b ScoreBreakdown) Get(name string) float64 {
	for _, f := range b {
		if f.Name == name {
			return f.Value
		}
	}
	return 0
}

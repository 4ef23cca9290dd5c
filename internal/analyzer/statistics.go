package analyzer

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"
)

// Metric names used in the statistics record.
const (
	MetricMean  = "mean"
	MetricStd   = "std"
	MetricCount = "count"
)

// Statistics is the summary of one table.
type Statistics struct {
	Mean  float64 // mean of the per-column means over numeric columns
	Std   float64 // mean of the per-column sample standard deviations
	Count int     // number of rows
}

// Map returns the statistics keyed by metric name.
func (s Statistics) Map() map[string]float64 {
	return map[string]float64{
		MetricMean:  s.Mean,
		MetricStd:   s.Std,
		MetricCount: float64(s.Count),
	}
}

func (s Statistics) String() string {
	return fmt.Sprintf("{mean: %g, std: %g, count: %d}", s.Mean, s.Std, s.Count)
}

// Summarize computes Statistics for df. Only Int and Float columns take part
// in mean and std; a table without numeric columns gets NaN for both.
// Missing cells are skipped.
func Summarize(df *dataframe.DataFrame) Statistics {
	if df == nil {
		return Statistics{Mean: math.NaN(), Std: math.NaN()}
	}

	var means, stds []float64
	for _, name := range df.Names() {
		col := df.Col(name)
		if !isNumeric(col) {
			continue
		}
		vals := dropNaN(col.Float())
		means = append(means, meanOf(vals))
		stds = append(stds, sampleStdDev(vals))
	}

	return Statistics{
		Mean:  meanOf(means),
		Std:   meanOf(stds),
		Count: df.Nrow(),
	}
}

func isNumeric(s series.Series) bool {
	switch s.Type() {
	case series.Int, series.Float:
		return true
	}
	return false
}

// sampleStdDev uses the n-1 denominator; fewer than two values yield NaN.
func sampleStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.StdDev(xs, nil)
}

// meanOf skips NaN entries, so missing cells and undefined per-column
// results do not poison the aggregate.
func meanOf(xs []float64) float64 {
	xs = dropNaN(xs)
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}

func dropNaN(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}

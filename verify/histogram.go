package verify

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/clasmatch/clasmatch/domain"
)

// RankHistogram counts, for every applicant in instance, the rank at which
// m matches it: hist[r-1] is the number of applicants matched at rank r.
// The slice is sized to instance.MaxRank(); an applicant matched at a rank
// beyond that (which cannot happen for a matching built over instance, but
// is tolerated defensively) is simply not counted.
func RankHistogram(m domain.Matching, instance *domain.Instance) []int {
	hist := make([]int, instance.MaxRank())
	for _, a := range instance.Applicants() {
		for _, partner := range m.Partners(a.ID) {
			if partner.Rank >= 1 && partner.Rank <= len(hist) {
				hist[partner.Rank-1]++
			}
		}
	}
	return hist
}

// DominatesLexicographically reports whether histogram a dominates b:
// reading from rank 1 upward, the first index where they differ has a's
// count strictly higher. Equal histograms do not dominate each other.
// Numeric comparison is delegated to gonum/floats so histogram comparison
// and HistogramStats share one numeric substrate.
func DominatesLexicographically(a, b []int) bool {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var av, bv float64
		if i < len(a) {
			av = float64(a[i])
		}
		if i < len(b) {
			bv = float64(b[i])
		}
		if floats.Equal([]float64{av}, []float64{bv}) {
			continue
		}
		return av > bv
	}
	return false
}

// HistogramStats returns the mean and variance of a rank histogram's
// per-rank counts, surfaced through engine.Report for diagnostic logging.
func HistogramStats(hist []int) (mean, variance float64) {
	data := make([]float64, len(hist))
	for i, v := range hist {
		data[i] = float64(v)
	}
	mean = stat.Mean(data, nil)
	variance = stat.Variance(data, nil)
	return mean, variance
}

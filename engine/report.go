package engine

import "github.com/clasmatch/clasmatch/domain"

// Algorithm selects which driver Compute dispatches to.
type Algorithm int

const (
	CPM Algorithm = iota
	CRMM
	RSM
)

// String renders the algorithm name used as the Recorder's "algorithm"
// label and in Report/log output.
func (a Algorithm) String() string {
	switch a {
	case CPM:
		return "cpm"
	case CRMM:
		return "crmm"
	case RSM:
		return "rsm"
	default:
		return "unknown"
	}
}

// Report summarizes one Compute call: which algorithm ran, how many
// augmentation rounds it took, the resulting rank histogram, and — for
// RSM with VerifyRelaxedStable set — the relaxed-stability verdict.
type Report struct {
	Algorithm          Algorithm
	RunID              string
	Feasible           bool
	AugmentationRounds int
	RankHistogram      []int
	HistogramMean      float64
	HistogramVariance  float64

	// Relaxed-stability verdict; only populated when Algorithm is RSM
	// and Options.VerifyRelaxedStable was set.
	Verified      bool
	RelaxedStable bool
	Blocking      []domain.VertexID
}

package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/clasmatch/clasmatch/cpm"
	"github.com/clasmatch/clasmatch/crmm"
	"github.com/clasmatch/clasmatch/domain"
	"github.com/clasmatch/clasmatch/flownet"
	"github.com/clasmatch/clasmatch/rsm"
	"github.com/clasmatch/clasmatch/verify"
)

// deleteHook returns a cpm/crmm.DeleteHook-shaped closure that reports
// every typed-edge deletion round to opts.Metrics under algorithm's name.
func deleteHook(rec *Recorder, algorithm string) func(label string, count int) {
	return func(label string, count int) {
		rec.RecordEdgesDeleted(algorithm, label, count)
	}
}

// Compute is the single entry point a caller invokes to run CPM, CRMM,
// or RSM over instance, with the ambient stack (logging, metrics,
// tracing, a per-call run ID) wired around the dispatch. ctx is
// honored only at the boundary — refusing to start, or bounding the
// span/log export around the call — never polled mid-Dinic.
func Compute(ctx context.Context, instance *domain.Instance, algorithm Algorithm, opts Options) (domain.Matching, Report, error) {
	opts = opts.normalize()
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	logger := opts.Logger.With("run_id", runID, "algorithm", algorithm.String())

	ctx, span := opts.Tracer.Start(ctx, "engine.Compute")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, Report{}, fmt.Errorf("engine: Compute refused to start: %w", err)
	}

	fnOpts := flownet.DefaultOptions()

	var (
		m        domain.Matching
		feasible bool
		rounds   int
		rsmRes   rsm.Result
		err      error
	)

	switch algorithm {
	case CPM:
		logger.Info("starting CPM")
		m, feasible, err = cpm.Compute(ctx, instance, fnOpts, cpm.WithDeleteHook(deleteHook(opts.Metrics, algorithm.String())))
		rounds = 2 // phase-1 f-edges, phase-2 s-edges
	case CRMM:
		logger.Info("starting CRMM")
		m, err = crmm.Compute(ctx, instance, fnOpts, crmm.WithDeleteHook(deleteHook(opts.Metrics, algorithm.String())))
		feasible = err == nil
		rounds = instance.MaxRank()
	case RSM:
		logger.Info("starting RSM", "verify_relaxed_stable", opts.VerifyRelaxedStable)
		rsmRes, err = rsm.Compute(ctx, instance, fnOpts, opts.VerifyRelaxedStable, cpm.WithDeleteHook(deleteHook(opts.Metrics, algorithm.String())))
		m, feasible = rsmRes.Matching, rsmRes.Feasible
		rounds = 2 // CPM seed is itself two phases; the proposal loop is unbounded
	default:
		return nil, Report{}, fmt.Errorf("engine: unknown algorithm %v", algorithm)
	}

	if err != nil {
		logger.Error("algorithm failed", "error", err)
		return nil, Report{}, fmt.Errorf("engine: %s: %w", algorithm, err)
	}

	for i := 0; i < rounds; i++ {
		opts.Metrics.RecordAugmentationRound(algorithm.String())
	}

	report := Report{
		Algorithm:          algorithm,
		RunID:              runID,
		Feasible:           feasible,
		AugmentationRounds: rounds,
	}

	if !feasible {
		logger.Warn("no feasible matching found")
		return nil, report, nil
	}

	hist := verify.RankHistogram(m, instance)
	report.RankHistogram = hist
	report.HistogramMean, report.HistogramVariance = verify.HistogramStats(hist)
	opts.Metrics.SetRankHistogram(algorithm.String(), hist)

	if algorithm == RSM {
		report.Verified = rsmRes.Verified
		report.RelaxedStable = rsmRes.RelaxedStable
		report.Blocking = rsmRes.Blocking
	}

	logger.Info("computation complete",
		"feasible", feasible,
		"rank_histogram", hist,
	)
	return m, report, nil
}

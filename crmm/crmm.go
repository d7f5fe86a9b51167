package crmm

import (
	"context"

	"github.com/clasmatch/clasmatch/classtree"
	"github.com/clasmatch/clasmatch/domain"
	"github.com/clasmatch/clasmatch/flownet"
	"github.com/clasmatch/clasmatch/reconstruct"
)

// rankedEdge is one original (applicant, post) preference entry at a given
// rank, together with the "alive" flag §4.4 step 6 toggles off as higher
// ranks get crowded out by lower ones.
type rankedEdge struct {
	applicant domain.VertexID
	post      domain.VertexID
	alive     bool
}

// DeleteHook is called once per DeleteEdges invocation with the typed
// edge label pair (formatted "U->V") and how many forward edges it
// deleted, so a caller (engine's Recorder) can report real pruning
// counts instead of a metric that never moves.
type DeleteHook func(label string, count int)

// Option configures an optional Compute behavior. Mirrors the
// functional-options shape used across the rest of the module
// (flownet.Options, domain.InstanceOption, genbip.Option).
type Option func(*config)

type config struct {
	onDelete DeleteHook
}

// WithDeleteHook registers fn to be called after every DeleteEdges
// round with the label pair and deletion count.
func WithDeleteHook(fn DeleteHook) Option {
	return func(c *config) { c.onDelete = fn }
}

func newConfig(opts ...Option) *config {
	c := &config{onDelete: func(string, int) {}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compute runs CRMM (§4.4): for k = 1..R in order, insert this round's
// alive rank-k edges, push max flow, decompose, delete T→S/U→S edges, and
// prune edges at ranks > k whose endpoints landed in the wrong label.
// CRMM never fails — the returned matching always covers whatever
// applicants the final flow state admits.
func Compute(ctx context.Context, inst *domain.Instance, fnOpts flownet.Options, opts ...Option) (domain.Matching, error) {
	cfg := newConfig(opts...)
	tree := classtree.Build(inst)
	byRank := buildRankedEdgeLists(inst)
	maxRank := inst.MaxRank()

	for k := 1; k <= maxRank; k++ {
		for i := range byRank[k] {
			re := &byRank[k][i]
			if !re.alive {
				continue
			}
			ref := domain.RealPost(re.post)
			aLeaf, _ := tree.ApplicantLeaf(re.applicant, ref)
			pLeaf, _ := tree.PostLeaf(re.applicant, ref)
			tree.Net.AddEdge(aLeaf, pLeaf, 1, k)
		}

		if _, err := tree.Net.MaxFlow(ctx, tree.Source, tree.Sink, fnOpts); err != nil {
			return nil, err
		}

		tree.Net.ResetLabels()
		tree.Net.DecomposeSTU(tree.Source, tree.Sink)
		cfg.onDelete("T->S", tree.Net.DeleteEdges(flownet.LabelT, flownet.LabelS))
		cfg.onDelete("U->S", tree.Net.DeleteEdges(flownet.LabelU, flownet.LabelS))

		pruneDeadEdges(tree, byRank, k, maxRank)
	}

	mflow := reconstruct.Extract(tree)
	return reconstruct.ToMatching(mflow, inst)
}

// buildRankedEdgeLists groups every (applicant, post) preference entry by
// rank, in applicant-then-preference-list order — the same discovery order
// classtree.Build uses, so rank group j's entries line up one-to-one with
// the applicant/post leaves already present in the tree.
func buildRankedEdgeLists(inst *domain.Instance) map[int][]rankedEdge {
	byRank := make(map[int][]rankedEdge)
	for _, a := range inst.Applicants() {
		for _, pref := range a.Prefs {
			byRank[pref.Rank] = append(byRank[pref.Rank], rankedEdge{
				applicant: a.ID,
				post:      pref.Partner,
				alive:     true,
			})
		}
	}
	return byRank
}

// pruneDeadEdges implements §4.4 step 6: for every rank j beyond k, mark an
// edge dead if its applicant leaf is labeled T or U, or its post leaf is
// labeled S or U — it can never be usefully inserted in a later round.
func pruneDeadEdges(tree *classtree.Tree, byRank map[int][]rankedEdge, k, maxRank int) {
	for j := k + 1; j <= maxRank; j++ {
		list := byRank[j]
		for i := range list {
			re := &list[i]
			if !re.alive {
				continue
			}
			ref := domain.RealPost(re.post)
			aLeaf, ok := tree.ApplicantLeaf(re.applicant, ref)
			if !ok {
				continue
			}
			pLeaf, ok := tree.PostLeaf(re.applicant, ref)
			if !ok {
				continue
			}
			aLabel := tree.Net.Label(aLeaf)
			pLabel := tree.Net.Label(pLeaf)
			if aLabel == flownet.LabelT || aLabel == flownet.LabelU ||
				pLabel == flownet.LabelS || pLabel == flownet.LabelU {
				re.alive = false
			}
		}
	}
}

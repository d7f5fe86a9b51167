package cpm

import (
	"context"

	"github.com/clasmatch/clasmatch/classtree"
	"github.com/clasmatch/clasmatch/domain"
	"github.com/clasmatch/clasmatch/flownet"
	"github.com/clasmatch/clasmatch/reconstruct"
)

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

// Compute runs the two-phase CPM augmentation (§4.3) over inst and returns
// the resulting matching together with whether a popular matching was
// found. A false result with a nil error means the instance is infeasible
// (MFLOW did not cover every applicant) — not a Go error, per the error
// design's "infeasible CPM instance" kind.
func Compute(ctx context.Context, inst *domain.Instance, fnOpts flownet.Options, opts ...Option) (domain.Matching, bool, error) {
	cfg := newConfig(opts...)
	tree := classtree.Build(inst)

	addFEdges(tree, inst)
	if _, err := tree.Net.MaxFlow(ctx, tree.Source, tree.Sink, fnOpts); err != nil {
		return nil, false, err
	}

	tree.Net.DecomposeSTU(tree.Source, tree.Sink)
	cfg.onDelete("T->S", tree.Net.DeleteEdges(flownet.LabelT, flownet.LabelS))
	cfg.onDelete("U->S", tree.Net.DeleteEdges(flownet.LabelU, flownet.LabelS))

	addSEdges(tree, inst)
	if _, err := tree.Net.MaxFlow(ctx, tree.Source, tree.Sink, fnOpts); err != nil {
		return nil, false, err
	}

	mflow := reconstruct.Extract(tree)
	if !reconstruct.Complete(mflow, inst) {
		return nil, false, nil
	}
	m, err := reconstruct.ToMatching(mflow, inst)
	if err != nil {
		return nil, false, err
	}
	return m, true, nil
}

// addFEdges wires H₁'s f-edges: for every applicant, its rank-1 preference
// entries each get an applicant-leaf→post-leaf edge of capacity 1, rank 1.
// Preference lists are assumed rank-ordered, so iteration stops at the
// first entry whose rank isn't 1.
func addFEdges(tree *classtree.Tree, inst *domain.Instance) {
	for _, a := range inst.Applicants() {
		for _, pref := range a.Prefs {
			if pref.Rank != 1 {
				break
			}
			ref := domain.RealPost(pref.Partner)
			aLeaf, _ := tree.ApplicantLeaf(a.ID, ref)
			pLeaf, _ := tree.PostLeaf(a.ID, ref)
			tree.Net.AddEdge(aLeaf, pLeaf, 1, 1)
		}
	}
}

// addSEdges wires H₂'s s-edges: for every applicant whose root landed in S
// after the first round's decomposition, find its most preferred rank at
// which at least one post leaf is labeled T, and add an edge for every
// T-labeled post leaf at that rank. If no rank has a T-labeled post leaf,
// fall back to the applicant's last-resort subtree.
func addSEdges(tree *classtree.Tree, inst *domain.Instance) {
	for _, a := range inst.Applicants() {
		root, ok := tree.ApplicantRoot(a.ID)
		if !ok || tree.Net.Label(root) != flownet.LabelS {
			continue
		}

		mostPreferred := -1
		for _, pref := range a.Prefs {
			if mostPreferred != -1 && pref.Rank != mostPreferred {
				break
			}
			ref := domain.RealPost(pref.Partner)
			aLeaf, _ := tree.ApplicantLeaf(a.ID, ref)
			pLeaf, _ := tree.PostLeaf(a.ID, ref)
			if tree.Net.Label(pLeaf) == flownet.LabelT {
				mostPreferred = pref.Rank
				tree.Net.AddEdge(aLeaf, pLeaf, 1, pref.Rank)
			}
		}

		if mostPreferred == -1 {
			lr := domain.LastResortPost(a.ID)
			aLeaf, _ := tree.ApplicantLeaf(a.ID, lr)
			pLeaf, _ := tree.PostLeaf(a.ID, lr)
			tree.Net.AddEdge(aLeaf, pLeaf, 1, len(a.Prefs))
		}
	}
}

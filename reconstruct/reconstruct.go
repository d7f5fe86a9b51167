package reconstruct

import (
	"fmt"

	"github.com/clasmatch/clasmatch/classtree"
	"github.com/clasmatch/clasmatch/domain"
)

// Match is one entry of MFLOW: the rank at which an applicant was matched,
// and the post (real or last-resort) it was matched to.
type Match struct {
	Rank int
	Post domain.PostRef
}

// MFLOW maps an applicant id to its current match, as recovered from the
// flow network's residual edges.
type MFLOW map[domain.VertexID]Match

// Extract scans tree's residual edges for every one whose tail is a post
// leaf and head is an applicant leaf — a reverse residual edge of this
// shape represents a unit of flow pushed forward from applicant to post,
// i.e. a match, with the paired (forward) edge's rank as the match rank.
//
// Extract panics if more than one residual edge targets the same
// applicant leaf: construction guarantees each applicant leaf has
// capacity 1 on its incoming C_*_a→C_p_a edge, so two distinct matches to
// the same leaf indicate a violated flow invariant, not a valid input —
// the likely-bug resolution recorded for this component treats it as a
// programmer error rather than silently overwriting.
func Extract(tree *classtree.Tree) MFLOW {
	mflow := make(MFLOW)
	for _, r := range tree.Net.ResidualEdges() {
		applicant, applicantPost, isApplicantLeaf := tree.IdentifyApplicantLeaf(r.To)
		_, _, isPostLeaf := tree.IdentifyPostLeaf(r.From)
		if !isApplicantLeaf || !isPostLeaf {
			continue
		}
		if existing, seen := mflow[applicant]; seen {
			panic(fmt.Sprintf("reconstruct: duplicate residual match for applicant leaf %q: already matched at rank %d, post %v; new rank %d",
				applicant, existing.Rank, existing.Post, r.ReverseRank))
		}
		mflow[applicant] = Match{Rank: r.ReverseRank, Post: applicantPost}
	}
	return mflow
}

// Complete reports whether mflow covers every applicant in inst — the CPM
// acceptance gate (§4.3). A rank-0 match does not count as covering: it is
// the last-resort edge of an applicant with an empty preference list, an
// applicant with no real option at all.
func Complete(mflow MFLOW, inst *domain.Instance) bool {
	if len(mflow) != len(inst.Applicants()) {
		return false
	}
	for _, match := range mflow {
		if match.Rank == 0 {
			return false
		}
	}
	return true
}

// ToMatching translates mflow into the external domain.Matching: real
// (applicant, post) pairs are populated on both sides with each side's
// own rank for the other (looked up from inst), and last-resort pairs are
// dropped. It returns ErrAsymmetricMatch if a matched post never listed
// its applicant on its own preference list — a legal instance per
// domain.Validate, but one that leaves no real rank to record on the
// post's side.
func ToMatching(mflow MFLOW, inst *domain.Instance) (domain.Matching, error) {
	m := domain.NewMatching()
	for applicant, match := range mflow {
		post, ok := match.Post.Real()
		if !ok {
			continue // last-resort: filtered out of the returned matching.
		}
		postRank, found, err := inst.RankOfApplicantFor(post, applicant)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("%w: post %q, applicant %q", ErrAsymmetricMatch, post, applicant)
		}
		m.Add(applicant, match.Rank, post)
		m.Add(post, postRank, applicant)
	}
	return m, nil
}

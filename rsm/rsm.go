package rsm

import (
	"context"

	"github.com/clasmatch/clasmatch/cpm"
	"github.com/clasmatch/clasmatch/domain"
	"github.com/clasmatch/clasmatch/flownet"
	"github.com/clasmatch/clasmatch/verify"
)

// Result is RSM's outcome: the matching (nil if infeasible), whether a
// feasible seed existed at all, and — only when the caller opted into
// verification — the relaxed-stability verdict against the final
// matching, attached without altering it (§4.6's "advisory" wording).
type Result struct {
	Matching      domain.Matching
	Feasible      bool
	Verified      bool
	RelaxedStable bool
	Blocking      []domain.VertexID
}

// Compute runs RSM (§4.6): build the quota-flattened transformed instance,
// seed a matching via CPM over it, then refine the seed through a
// level-aware LIFO proposal loop using the ORIGINAL instance's ranks and
// upper quotas throughout. If verifyRelaxedStable is set, verify.RelaxedStable
// is run on the final matching and attached to the result. cpmOpts is
// forwarded verbatim to the CPM seed call (e.g. cpm.WithDeleteHook), since
// RSM's own typed-edge deletions all happen inside that seed.
func Compute(ctx context.Context, inst *domain.Instance, opts flownet.Options, verifyRelaxedStable bool, cpmOpts ...cpm.Option) (Result, error) {
	transformed, err := buildTransformedInstance(inst)
	if err != nil {
		return Result{}, err
	}

	seed, ok, err := cpm.Compute(ctx, transformed, opts, cpmOpts...)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{Feasible: false}, nil
	}

	m, level, stack, proposalIdx := seedMatching(inst, seed)
	runProposalLoop(inst, m, level, stack, proposalIdx)

	result := Result{Matching: m, Feasible: true}
	if verifyRelaxedStable {
		result.Verified = true
		result.RelaxedStable, result.Blocking = verify.RelaxedStable(inst, m)
	}
	return result, nil
}

// buildTransformedInstance builds G′ (§4.6's "preparation" step): every
// post's upper quota is lowered to its own lower quota, and every
// applicant's preference list is flattened to a single tie at rank 1 —
// vertex identities and applicant upper/lower quotas are unchanged.
func buildTransformedInstance(inst *domain.Instance) (*domain.Instance, error) {
	var opts []domain.InstanceOption
	for _, p := range inst.Posts() {
		opts = append(opts, domain.WithPost(domain.Vertex{
			ID: p.ID, LowerQuota: p.LowerQuota, UpperQuota: p.LowerQuota, Prefs: p.Prefs,
		}))
	}
	for _, a := range inst.Applicants() {
		flattened := make([]domain.PreferenceEntry, len(a.Prefs))
		for i, pref := range a.Prefs {
			flattened[i] = domain.PreferenceEntry{Rank: 1, Partner: pref.Partner}
		}
		opts = append(opts, domain.WithApplicant(domain.Vertex{
			ID: a.ID, LowerQuota: a.LowerQuota, UpperQuota: a.UpperQuota, Prefs: flattened,
		}))
	}
	return domain.NewInstance(opts...)
}

// seedMatching translates seed (computed over the transformed instance,
// whose ranks are meaningless) back into a matching recording both sides'
// ORIGINAL ranks, per §4.6's resolved rank-bookkeeping detail, and
// initializes the level map and free-applicant LIFO stack: level 0 for
// every seeded applicant, level 1 (and pushed onto the stack) for every
// applicant the seed left unmatched.
func seedMatching(inst *domain.Instance, seed domain.Matching) (domain.Matching, map[domain.VertexID]int, []domain.VertexID, map[domain.VertexID]int) {
	m := domain.NewMatching()
	level := make(map[domain.VertexID]int)
	proposalIdx := make(map[domain.VertexID]int)
	var stack []domain.VertexID

	for _, a := range inst.Applicants() {
		partners := seed.Partners(a.ID)
		if len(partners) == 0 {
			level[a.ID] = 1
			stack = append(stack, a.ID)
			continue
		}
		level[a.ID] = 0
		for _, partner := range partners {
			post := partner.Partner
			applicantRank, _, _ := inst.RankOfPostFor(a.ID, post)
			postRank, _, _ := inst.RankOfApplicantFor(post, a.ID)
			m.Add(a.ID, applicantRank, post)
			m.Add(post, postRank, a.ID)
		}
	}
	return m, level, stack, proposalIdx
}

// runProposalLoop drains the LIFO stack per §4.6 steps 1-6, mutating m and
// level in place.
func runProposalLoop(inst *domain.Instance, m domain.Matching, level map[domain.VertexID]int, stack []domain.VertexID, proposalIdx map[domain.VertexID]int) {
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		av, err := inst.Applicant(u)
		if err != nil {
			continue
		}
		idx := proposalIdx[u]
		if idx >= len(av.Prefs) {
			continue
		}
		v := av.Prefs[idx].Partner
		proposalIdx[u] = idx + 1 // advance unconditionally, per step 6

		ru, _, _ := inst.RankOfApplicantFor(v, u) // u's rank on v's preference list
		rv, _, _ := inst.RankOfPostFor(u, v)       // v's rank on u's preference list

		pv, err := inst.Post(v)
		if err != nil {
			continue
		}
		vPartners := m.Partners(v)

		if len(vPartners) < pv.UpperQuota {
			m.Add(u, rv, v)
			m.Add(v, ru, u)
			continue
		}

		if uc, ok := findLevelZeroPartner(vPartners, level); ok {
			removePartner(m, v, uc)
			removePartner(m, uc, v)
			level[uc] = 1
			m.Add(u, rv, v)
			m.Add(v, ru, u)
			stack = append(stack, uc)
			continue
		}

		worstIdx, ucRank, hasWorst := vPartners.LeastPreferred()
		if !hasWorst {
			continue
		}
		uc := vPartners[worstIdx].Partner
		if ru < ucRank {
			removePartner(m, v, uc)
			removePartner(m, uc, v)
			m.Add(u, rv, v)
			m.Add(v, ru, u)
			stack = append(stack, uc)
		} else {
			stack = append(stack, u)
		}
	}
}

func findLevelZeroPartner(partners domain.PartnerList, level map[domain.VertexID]int) (domain.VertexID, bool) {
	for _, p := range partners {
		if level[p.Partner] == 0 {
			return p.Partner, true
		}
	}
	return "", false
}

func removePartner(m domain.Matching, v, partner domain.VertexID) {
	partners := m.Partners(v)
	for i, p := range partners {
		if p.Partner == partner {
			m.Remove(v, i)
			return
		}
	}
}

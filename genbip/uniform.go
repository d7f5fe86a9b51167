package genbip

import (
	"fmt"

	"github.com/clasmatch/clasmatch/domain"
)

// minPartitionSize is the smallest partition Uniform accepts on either
// side — an empty partition can never form a matching.
const minPartitionSize = 1

// Uniform builds a random bipartite instance with nA applicants ("a0".."aN-1")
// and nB posts ("b0".."bN-1"): every vertex's preference list is a uniformly
// random permutation of the opposite partition, with consecutive entries
// tied at the same rank with the configured probability, and upper quotas
// drawn uniformly from the configured [lo, hi] range (default [1,1]).
func Uniform(nA, nB int, opts ...Option) (*domain.Instance, error) {
	if nA < minPartitionSize || nB < minPartitionSize {
		return nil, fmt.Errorf("genbip: Uniform(nA=%d, nB=%d): both must be >= %d", nA, nB, minPartitionSize)
	}
	cfg := newConfig(opts...)

	applicantIDs := make([]domain.VertexID, nA)
	for i := range applicantIDs {
		applicantIDs[i] = domain.VertexID(fmt.Sprintf("a%d", i))
	}
	postIDs := make([]domain.VertexID, nB)
	for i := range postIDs {
		postIDs[i] = domain.VertexID(fmt.Sprintf("b%d", i))
	}

	var instOpts []domain.InstanceOption
	for _, id := range applicantIDs {
		instOpts = append(instOpts, domain.WithApplicant(domain.Vertex{
			ID:         id,
			UpperQuota: cfg.randQuota(),
			Prefs:      cfg.randomPrefs(postIDs),
		}))
	}
	for _, id := range postIDs {
		instOpts = append(instOpts, domain.WithPost(domain.Vertex{
			ID:         id,
			UpperQuota: cfg.randQuota(),
			Prefs:      cfg.randomPrefs(applicantIDs),
		}))
	}
	return domain.NewInstance(instOpts...)
}

// randomPrefs returns a uniformly random permutation of candidates as a
// preference list, ranked 1..k with ties formed between consecutive
// entries per cfg.tieProb.
func (c *config) randomPrefs(candidates []domain.VertexID) []domain.PreferenceEntry {
	perm := c.rng.Perm(len(candidates))
	prefs := make([]domain.PreferenceEntry, len(candidates))
	rank := 1
	for i, idx := range perm {
		if i > 0 && c.rng.Float64() >= c.tieProb {
			rank++
		}
		prefs[i] = domain.PreferenceEntry{Rank: rank, Partner: candidates[idx]}
	}
	return prefs
}

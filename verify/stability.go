package verify

import (
	"sort"

	"github.com/clasmatch/clasmatch/domain"
)

// RelaxedStable implements §8.3's relaxed-stability predicate exactly as
// resolved from original_source's RelaxedStable::is_relaxed_stable: an
// applicant u belongs to the blocking set BR if it prefers some post v it
// isn't matched to, and either v is undersubscribed or v prefers u to its
// current least-preferred partner — iteration over u's preference list
// stops at the first entry already matched (mirroring the original's
// break). M is relaxed-stable iff no BR applicant is unmatched and every
// post's lower-quota slack, after subtracting its BR-member partners,
// stays non-negative.
func RelaxedStable(instance *domain.Instance, m domain.Matching) (ok bool, blocking []domain.VertexID) {
	br := make(map[domain.VertexID]bool)

	for _, a := range instance.Applicants() {
		partners := m.Partners(a.ID)
		for _, pref := range a.Prefs {
			v := pref.Partner
			if hasPartner(partners, v) {
				break
			}
			pv, err := instance.Post(v)
			if err != nil {
				continue
			}
			vPartners := m.Partners(v)
			if len(vPartners) >= pv.UpperQuota {
				_, worstRank, hasWorst := vPartners.LeastPreferred()
				ru, found, _ := instance.RankOfApplicantFor(v, a.ID)
				if !hasWorst || !found || ru >= worstRank {
					continue // v doesn't prefer a to its worst partner
				}
			}
			br[a.ID] = true
		}
		if len(partners) == 0 && br[a.ID] {
			return false, blockingList(br)
		}
	}

	for _, p := range instance.Posts() {
		slack := p.LowerQuota
		for _, partner := range m.Partners(p.ID) {
			if br[partner.Partner] {
				slack--
			}
		}
		if slack < 0 {
			return false, blockingList(br)
		}
	}

	return true, blockingList(br)
}

func hasPartner(partners domain.PartnerList, v domain.VertexID) bool {
	for _, p := range partners {
		if p.Partner == v {
			return true
		}
	}
	return false
}

func blockingList(br map[domain.VertexID]bool) []domain.VertexID {
	out := make([]domain.VertexID, 0, len(br))
	for id := range br {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

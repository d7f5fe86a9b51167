package domain

// Partner is one entry of a PartnerList: the rank this vertex grants its
// partner, and the partner's ID.
type Partner struct {
	Rank    int
	Partner VertexID
}

// PartnerList is the ordered multiset of partners a vertex has been
// matched to. Entries are appended in the order a component discovers
// them (reconstruction order for CPM/CRMM, proposal order for RSM),
// which is also the tie-break order RSM's eviction rule relies on.
type PartnerList []Partner

// Len returns the number of partners currently assigned.
func (pl PartnerList) Len() int { return len(pl) }

// LeastPreferred returns the index and rank of the partner this list
// ranks worst (highest Rank value). Ties are broken by returning the
// first such entry in list order. ok is false for an empty list.
func (pl PartnerList) LeastPreferred() (idx int, rank int, ok bool) {
	if len(pl) == 0 {
		return 0, 0, false
	}
	idx, rank = 0, pl[0].Rank
	for i, p := range pl {
		if p.Rank > rank {
			idx, rank = i, p.Rank
		}
	}
	return idx, rank, true
}

// Matching maps every vertex that has at least one partner to its
// PartnerList. A vertex absent from the map is unmatched.
type Matching map[VertexID]PartnerList

// NewMatching returns an empty Matching.
func NewMatching() Matching { return make(Matching) }

// Add records that a grants rank aRank to partner b, and appends the
// entry to a's PartnerList. Callers add both directions explicitly (the
// matching is symmetric: each side stores its own view of the rank it
// grants the other).
func (m Matching) Add(a VertexID, aRank int, b VertexID) {
	m[a] = append(m[a], Partner{Rank: aRank, Partner: b})
}

// Remove deletes the PartnerList entry for a at the given partner list
// index, preserving the order of the remaining entries.
func (m Matching) Remove(a VertexID, idx int) {
	list := m[a]
	if idx < 0 || idx >= len(list) {
		return
	}
	list = append(list[:idx], list[idx+1:]...)
	if len(list) == 0 {
		delete(m, a)
		return
	}
	m[a] = list
}

// Partners returns a's current PartnerList (nil, not an error, when a is
// unmatched).
func (m Matching) Partners(a VertexID) PartnerList { return m[a] }

// Size returns |M(v)|, the number of partners currently assigned to v.
func (m Matching) Size(v VertexID) int { return len(m[v]) }

// HasPartner reports whether a is currently matched to b.
func (m Matching) HasPartner(a, b VertexID) bool {
	for _, p := range m[a] {
		if p.Partner == b {
			return true
		}
	}
	return false
}

package domain

// VertexID uniquely identifies a vertex within one partition of an Instance.
type VertexID string

// Side distinguishes the two bipartite partitions.
type Side int

const (
	// SideApplicant marks an A-vertex (a proposer).
	SideApplicant Side = iota
	// SidePost marks a B-vertex (a post, matched against).
	SidePost
)

func (s Side) String() string {
	if s == SideApplicant {
		return "applicant"
	}
	return "post"
}

// PreferenceEntry is one (rank, partner) slot on a Vertex's preference
// list. Rank starts at 1; equal consecutive ranks denote a tie.
type PreferenceEntry struct {
	Rank    int
	Partner VertexID
}

// Vertex is an external, read-only description of one applicant or post:
// an identifier, a [LowerQuota, UpperQuota] capacity range, and an ordered
// preference list over the opposite partition.
type Vertex struct {
	ID         VertexID
	LowerQuota int
	UpperQuota int
	Prefs      []PreferenceEntry
}

// rankOf returns the rank v's preference list assigns to partner, and
// whether partner appears on the list at all.
func (v *Vertex) rankOf(partner VertexID) (int, bool) {
	for _, p := range v.Prefs {
		if p.Partner == partner {
			return p.Rank, true
		}
	}
	return 0, false
}

// MaxRank returns the highest rank appearing on v's preference list, or 0
// if the list is empty.
func (v *Vertex) MaxRank() int {
	max := 0
	for _, p := range v.Prefs {
		if p.Rank > max {
			max = p.Rank
		}
	}
	return max
}

// PostRef names the partner an applicant is matched to: either a real post
// by ID, or the synthetic last-resort post belonging to some applicant.
// Modeling this as a tagged union (rather than sniffing an "L"-prefixed
// string) keeps every component above the classification-tree naming
// boundary free of substring parsing.
type PostRef struct {
	lastResortOf VertexID
	real         VertexID
	isLastResort bool
}

// RealPost builds a PostRef naming an actual B-vertex.
func RealPost(id VertexID) PostRef { return PostRef{real: id} }

// LastResortPost builds a PostRef naming the synthetic post reserved for
// applicant id.
func LastResortPost(applicant VertexID) PostRef {
	return PostRef{lastResortOf: applicant, isLastResort: true}
}

// IsLastResort reports whether r names a synthetic last-resort post.
func (r PostRef) IsLastResort() bool { return r.isLastResort }

// Real returns the real post ID and true, or the zero value and false if r
// names a last-resort post.
func (r PostRef) Real() (VertexID, bool) {
	if r.isLastResort {
		return "", false
	}
	return r.real, true
}

// LastResortOwner returns the applicant a last-resort PostRef belongs to,
// and true, or the zero value and false if r names a real post.
func (r PostRef) LastResortOwner() (VertexID, bool) {
	if !r.isLastResort {
		return "", false
	}
	return r.lastResortOf, true
}

package domain

import "fmt"

// Instance groups the two partitions of a bipartite matching problem.
// Vertices are stored in insertion order on both sides, with a parallel
// id→index map for O(1) lookup; iteration over Applicants/Posts is always
// in that insertion order, never via a bare Go map, so every component
// downstream is deterministic given the caller's input order.
type Instance struct {
	applicants   []Vertex
	posts        []Vertex
	applicantIdx map[VertexID]int
	postIdx      map[VertexID]int
}

// InstanceOption configures an Instance during construction, mirroring the
// functional-options shape used for the flow network and classification
// tree builders.
type InstanceOption func(*Instance) error

// NewInstance builds an Instance from options, in the order given. The
// typical caller is an out-of-scope reader that adds applicants and posts
// as it parses an input file.
func NewInstance(opts ...InstanceOption) (*Instance, error) {
	inst := &Instance{
		applicantIdx: make(map[VertexID]int),
		postIdx:      make(map[VertexID]int),
	}
	for _, opt := range opts {
		if err := opt(inst); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// WithApplicant appends an applicant vertex.
func WithApplicant(v Vertex) InstanceOption {
	return func(inst *Instance) error { return inst.addVertex(SideApplicant, v) }
}

// WithPost appends a post vertex.
func WithPost(v Vertex) InstanceOption {
	return func(inst *Instance) error { return inst.addVertex(SidePost, v) }
}

func (inst *Instance) addVertex(side Side, v Vertex) error {
	if v.ID == "" {
		return ErrEmptyVertexID
	}
	if v.UpperQuota < v.LowerQuota {
		return fmt.Errorf("domain: vertex %q: %w", v.ID, ErrQuotaInverted)
	}
	if v.LowerQuota < 0 || v.UpperQuota < 0 {
		return fmt.Errorf("domain: vertex %q: %w", v.ID, ErrNegativeQuota)
	}
	idx := &inst.applicantIdx
	list := &inst.applicants
	if side == SidePost {
		idx = &inst.postIdx
		list = &inst.posts
	}
	if _, exists := (*idx)[v.ID]; exists {
		return fmt.Errorf("domain: vertex %q: %w", v.ID, ErrDuplicateVertexID)
	}
	(*idx)[v.ID] = len(*list)
	*list = append(*list, v)
	return nil
}

// Validate checks that every preference entry references a vertex that
// exists on the opposite partition. Callers that trust their reader may
// skip this; out-of-range references are otherwise the reader's problem
// per the error-handling design.
func (inst *Instance) Validate() error {
	for _, a := range inst.applicants {
		for _, p := range a.Prefs {
			if _, ok := inst.postIdx[p.Partner]; !ok {
				return fmt.Errorf("domain: applicant %q prefers unknown post %q: %w", a.ID, p.Partner, ErrUnknownPartner)
			}
		}
	}
	for _, p := range inst.posts {
		for _, a := range p.Prefs {
			if _, ok := inst.applicantIdx[a.Partner]; !ok {
				return fmt.Errorf("domain: post %q prefers unknown applicant %q: %w", p.ID, a.Partner, ErrUnknownPartner)
			}
		}
	}
	return nil
}

// Applicants returns the A-partition in insertion order. The returned
// slice is owned by the caller; mutating it does not affect inst.
func (inst *Instance) Applicants() []Vertex {
	out := make([]Vertex, len(inst.applicants))
	copy(out, inst.applicants)
	return out
}

// Posts returns the B-partition in insertion order.
func (inst *Instance) Posts() []Vertex {
	out := make([]Vertex, len(inst.posts))
	copy(out, inst.posts)
	return out
}

// Applicant looks up an A-vertex by ID.
func (inst *Instance) Applicant(id VertexID) (*Vertex, error) {
	idx, ok := inst.applicantIdx[id]
	if !ok {
		return nil, fmt.Errorf("domain: applicant %q: %w", id, ErrVertexNotFound)
	}
	return &inst.applicants[idx], nil
}

// Post looks up a B-vertex by ID.
func (inst *Instance) Post(id VertexID) (*Vertex, error) {
	idx, ok := inst.postIdx[id]
	if !ok {
		return nil, fmt.Errorf("domain: post %q: %w", id, ErrVertexNotFound)
	}
	return &inst.posts[idx], nil
}

// RankOfPostFor returns the rank applicant a's preference list assigns to
// post p, and whether p appears on it at all.
func (inst *Instance) RankOfPostFor(a, p VertexID) (int, bool, error) {
	v, err := inst.Applicant(a)
	if err != nil {
		return 0, false, err
	}
	rank, ok := v.rankOf(p)
	return rank, ok, nil
}

// RankOfApplicantFor returns the rank post p's preference list assigns to
// applicant a, and whether a appears on it at all.
func (inst *Instance) RankOfApplicantFor(p, a VertexID) (int, bool, error) {
	v, err := inst.Post(p)
	if err != nil {
		return 0, false, err
	}
	rank, ok := v.rankOf(a)
	return rank, ok, nil
}

// MaxRank returns the highest preference rank appearing on any applicant's
// preference list; posts' preference lists are not consulted.
func (inst *Instance) MaxRank() int {
	max := 0
	for i := range inst.applicants {
		if r := inst.applicants[i].MaxRank(); r > max {
			max = r
		}
	}
	return max
}

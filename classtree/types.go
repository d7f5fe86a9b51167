package classtree

import (
	"github.com/clasmatch/clasmatch/domain"
	"github.com/clasmatch/clasmatch/flownet"
)

// leafPair is the key identifying one applicant/post leaf pair.
type leafPair struct {
	applicant domain.VertexID
	post      string // postKey(post)
}

// leafInfo is the reverse-lookup payload for a leaf node id.
type leafInfo struct {
	applicant domain.VertexID
	post      domain.PostRef
}

// Tree is the constructed H₀ network together with the lookup tables the
// CPM/CRMM/RSM drivers and the matching reconstructor need to translate
// between (applicant, post) pairs and flow-network node ids.
type Tree struct {
	Net    *flownet.Network
	Source flownet.NodeID
	Sink   flownet.NodeID

	applicantRoot map[domain.VertexID]flownet.NodeID
	postRoot      map[domain.VertexID]flownet.NodeID

	applicantLeaf map[leafPair]flownet.NodeID
	postLeaf      map[leafPair]flownet.NodeID

	idToApplicantLeaf map[flownet.NodeID]leafInfo
	idToPostLeaf      map[flownet.NodeID]leafInfo
}

// ApplicantRoot returns applicant a's subtree root (C_*_a).
func (t *Tree) ApplicantRoot(a domain.VertexID) (flownet.NodeID, bool) {
	id, ok := t.applicantRoot[a]
	return id, ok
}

// PostRoot returns post p's subtree root (C_*_p).
func (t *Tree) PostRoot(p domain.VertexID) (flownet.NodeID, bool) {
	id, ok := t.postRoot[p]
	return id, ok
}

// ApplicantLeaf returns applicant a's leaf corresponding to post (C_p_a,
// or C_La_a for a's own last-resort post).
func (t *Tree) ApplicantLeaf(a domain.VertexID, post domain.PostRef) (flownet.NodeID, bool) {
	id, ok := t.applicantLeaf[leafPair{applicant: a, post: postKey(post)}]
	return id, ok
}

// PostLeaf returns post p's leaf corresponding to applicant a (C_a_p, or
// C_a_La for a's own last-resort post).
func (t *Tree) PostLeaf(a domain.VertexID, post domain.PostRef) (flownet.NodeID, bool) {
	id, ok := t.postLeaf[leafPair{applicant: a, post: postKey(post)}]
	return id, ok
}

// IdentifyApplicantLeaf reverse-looks-up an applicant-leaf node id back
// into the (applicant, post) pair it names.
func (t *Tree) IdentifyApplicantLeaf(id flownet.NodeID) (domain.VertexID, domain.PostRef, bool) {
	info, ok := t.idToApplicantLeaf[id]
	return info.applicant, info.post, ok
}

// IdentifyPostLeaf reverse-looks-up a post-leaf node id back into the
// (applicant, post) pair it names.
func (t *Tree) IdentifyPostLeaf(id flownet.NodeID) (domain.VertexID, domain.PostRef, bool) {
	info, ok := t.idToPostLeaf[id]
	return info.applicant, info.post, ok
}

package classtree

import (
	"github.com/clasmatch/clasmatch/domain"
	"github.com/clasmatch/clasmatch/flownet"
)

// Build constructs H₀ for inst: source (id 0) and sink (id 1), per-applicant
// and per-post classification subtrees, and a last-resort subtree for
// every applicant, per the invariants in §3/§4.2. Node id assignment is
// sequential starting at 2; iteration is in the instance's own vertex and
// preference-list order throughout, so the resulting network is
// deterministic given that order.
func Build(inst *domain.Instance) *Tree {
	net := flownet.NewNetwork()
	t := &Tree{
		Net:               net,
		applicantRoot:     make(map[domain.VertexID]flownet.NodeID),
		postRoot:          make(map[domain.VertexID]flownet.NodeID),
		applicantLeaf:     make(map[leafPair]flownet.NodeID),
		postLeaf:          make(map[leafPair]flownet.NodeID),
		idToApplicantLeaf: make(map[flownet.NodeID]leafInfo),
		idToPostLeaf:      make(map[flownet.NodeID]leafInfo),
	}
	t.Source = net.AddNode("source")
	t.Sink = net.AddNode("sink")

	applicants := inst.Applicants()
	posts := inst.Posts()

	// §4.2 step 2: applicant roots and source edges.
	for _, a := range applicants {
		root := net.AddNode(classificationName("*", string(a.ID)))
		t.applicantRoot[a.ID] = root
		net.AddEdge(t.Source, root, a.UpperQuota, 0)
	}
	// Applicant leaves, one per preference entry.
	for _, a := range applicants {
		root := t.applicantRoot[a.ID]
		for _, pref := range a.Prefs {
			ref := domain.RealPost(pref.Partner)
			leaf := net.AddNode(classificationName(string(pref.Partner), string(a.ID)))
			net.AddEdge(root, leaf, 1, 0)
			key := leafPair{applicant: a.ID, post: postKey(ref)}
			t.applicantLeaf[key] = leaf
			t.idToApplicantLeaf[leaf] = leafInfo{applicant: a.ID, post: ref}
		}
	}

	// §4.2 step 3: post roots and sink edges.
	for _, p := range posts {
		root := net.AddNode(classificationName("*", string(p.ID)))
		t.postRoot[p.ID] = root
		net.AddEdge(root, t.Sink, p.UpperQuota, 0)
	}
	// Post leaves, one per applicant preference entry (same discovery
	// order as the applicant leaves above — see classtree's grounding in
	// original_source's add_post_classification_trees).
	for _, a := range applicants {
		for _, pref := range a.Prefs {
			ref := domain.RealPost(pref.Partner)
			postRoot, ok := t.postRoot[pref.Partner]
			if !ok {
				continue // caller skipped Validate(); treated as reader's problem.
			}
			leaf := net.AddNode(classificationName(string(a.ID), string(pref.Partner)))
			net.AddEdge(leaf, postRoot, 1, 0)
			key := leafPair{applicant: a.ID, post: postKey(ref)}
			t.postLeaf[key] = leaf
			t.idToPostLeaf[leaf] = leafInfo{applicant: a.ID, post: ref}
		}
	}

	// §4.2 step 4: last-resort subtree per applicant.
	for _, a := range applicants {
		ref := domain.LastResortPost(a.ID)
		lrRoot := net.AddNode(classificationName("*", postKey(ref)))
		net.AddEdge(lrRoot, t.Sink, 1, 0)

		aRoot := t.applicantRoot[a.ID]
		aLeaf := net.AddNode(classificationName(postKey(ref), string(a.ID)))
		net.AddEdge(aRoot, aLeaf, 1, 0)
		aKey := leafPair{applicant: a.ID, post: postKey(ref)}
		t.applicantLeaf[aKey] = aLeaf
		t.idToApplicantLeaf[aLeaf] = leafInfo{applicant: a.ID, post: ref}

		pLeaf := net.AddNode(classificationName(string(a.ID), postKey(ref)))
		net.AddEdge(pLeaf, lrRoot, 1, 0)
		t.postLeaf[aKey] = pLeaf
		t.idToPostLeaf[pLeaf] = leafInfo{applicant: a.ID, post: ref}
	}

	return t
}

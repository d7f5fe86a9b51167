package classtree_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/clasmatch/clasmatch/classtree"
	"github.com/clasmatch/clasmatch/domain"
)

// BuildSuite exercises H₀ construction against the invariants of §3/§4.2,
// using the S1 scenario (a trivial 2x2 CPM instance).
type BuildSuite struct {
	suite.Suite
}

func (s *BuildSuite) s1Instance() *domain.Instance {
	inst, err := domain.NewInstance(
		domain.WithApplicant(domain.Vertex{ID: "a1", UpperQuota: 1, Prefs: []domain.PreferenceEntry{
			{Rank: 1, Partner: "b1"}, {Rank: 2, Partner: "b2"},
		}}),
		domain.WithApplicant(domain.Vertex{ID: "a2", UpperQuota: 1, Prefs: []domain.PreferenceEntry{
			{Rank: 1, Partner: "b1"}, {Rank: 2, Partner: "b2"},
		}}),
		domain.WithPost(domain.Vertex{ID: "b1", UpperQuota: 1, Prefs: []domain.PreferenceEntry{
			{Rank: 1, Partner: "a1"}, {Rank: 2, Partner: "a2"},
		}}),
		domain.WithPost(domain.Vertex{ID: "b2", UpperQuota: 1, Prefs: []domain.PreferenceEntry{
			{Rank: 1, Partner: "a2"}, {Rank: 2, Partner: "a1"},
		}}),
	)
	s.Require().NoError(err)
	return inst
}

func (s *BuildSuite) TestSourceSinkIds() {
	tree := classtree.Build(s.s1Instance())
	require.Equal(s.T(), 0, int(tree.Source))
	require.Equal(s.T(), 1, int(tree.Sink))
}

func (s *BuildSuite) TestApplicantSubtree() {
	tree := classtree.Build(s.s1Instance())
	root, ok := tree.ApplicantRoot("a1")
	require.True(s.T(), ok)

	leaf, ok := tree.ApplicantLeaf("a1", domain.RealPost("b1"))
	require.True(s.T(), ok)
	require.NotEqual(s.T(), root, leaf)
}

func (s *BuildSuite) TestLastResortSubtreeExists() {
	tree := classtree.Build(s.s1Instance())
	ref := domain.LastResortPost("a1")

	aLeaf, ok := tree.ApplicantLeaf("a1", ref)
	require.True(s.T(), ok)
	pLeaf, ok := tree.PostLeaf("a1", ref)
	require.True(s.T(), ok)

	applicant, post, ok := tree.IdentifyApplicantLeaf(aLeaf)
	require.True(s.T(), ok)
	require.Equal(s.T(), domain.VertexID("a1"), applicant)
	require.True(s.T(), post.IsLastResort())

	_, _, ok = tree.IdentifyPostLeaf(pLeaf)
	require.True(s.T(), ok)
}

func (s *BuildSuite) TestReverseLookupRoundTrips() {
	tree := classtree.Build(s.s1Instance())
	leaf, ok := tree.ApplicantLeaf("a2", domain.RealPost("b2"))
	require.True(s.T(), ok)

	applicant, post, ok := tree.IdentifyApplicantLeaf(leaf)
	require.True(s.T(), ok)
	require.Equal(s.T(), domain.VertexID("a2"), applicant)
	real, isReal := post.Real()
	require.True(s.T(), isReal)
	require.Equal(s.T(), domain.VertexID("b2"), real)
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

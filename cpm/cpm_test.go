package cpm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/clasmatch/clasmatch/cpm"
	"github.com/clasmatch/clasmatch/domain"
	"github.com/clasmatch/clasmatch/flownet"
)

// CPMSuite exercises the two-phase driver against §8.4's S1 and S3
// scenarios.
type CPMSuite struct {
	suite.Suite
}

// s1Instance is spec §8.4 S1: a trivial 2x2 instance with a unique popular
// matching up to the a1/a2 symmetry.
func (s *CPMSuite) s1Instance() *domain.Instance {
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

func (s *CPMSuite) TestS1ProducesCompletePopularMatching() {
	inst := s.s1Instance()
	m, ok, err := cpm.Compute(context.Background(), inst, flownet.DefaultOptions())
	require.NoError(s.T(), err)
	require.True(s.T(), ok)

	require.Equal(s.T(), 1, m.Size("a1"))
	require.Equal(s.T(), 1, m.Size("a2"))
	require.Equal(s.T(), 1, m.Size("b1"))
	require.Equal(s.T(), 1, m.Size("b2"))

	// Every rank-1 preference that can be jointly satisfied is: a1 and a2
	// cannot both take b1, so exactly one of them is matched at rank 1 and
	// the other at rank 2, each to a different post.
	a1 := m.Partners("a1")[0]
	a2 := m.Partners("a2")[0]
	require.NotEqual(s.T(), a1.Partner, a2.Partner)
}

// s3Instance is spec §8.4 S3: an applicant with no real preferences at
// all, leaving CPM with only the last-resort fallback — infeasible.
func (s *CPMSuite) s3Instance() *domain.Instance {
	inst, err := domain.NewInstance(
		domain.WithApplicant(domain.Vertex{ID: "a1", UpperQuota: 1}),
		domain.WithPost(domain.Vertex{ID: "b1", UpperQuota: 1}),
		domain.WithPost(domain.Vertex{ID: "b2", UpperQuota: 1}),
	)
	s.Require().NoError(err)
	return inst
}

func (s *CPMSuite) TestS3Infeasible() {
	inst := s.s3Instance()
	m, ok, err := cpm.Compute(context.Background(), inst, flownet.DefaultOptions())
	require.NoError(s.T(), err)
	require.False(s.T(), ok)
	require.Nil(s.T(), m)
}

// TestDeleteHookReportsRealCounts exercises WithDeleteHook against S1:
// the single decomposition between phase 1 and phase 2 fires the hook
// once for T->S and once for U->S, with the counts DeleteEdges returns.
// On S1 no forward edge runs T->S or U->S, so the total may be zero.
func (s *CPMSuite) TestDeleteHookReportsRealCounts() {
	inst := s.s1Instance()
	var calls []string
	total := 0
	hook := cpm.WithDeleteHook(func(label string, count int) {
		calls = append(calls, label)
		total += count
	})

	_, ok, err := cpm.Compute(context.Background(), inst, flownet.DefaultOptions(), hook)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)

	require.Equal(s.T(), []string{"T->S", "U->S"}, calls)
	require.GreaterOrEqual(s.T(), total, 0)
}

func TestCPMSuite(t *testing.T) {
	suite.Run(t, new(CPMSuite))
}

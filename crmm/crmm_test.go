package crmm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/clasmatch/clasmatch/crmm"
	"github.com/clasmatch/clasmatch/domain"
	"github.com/clasmatch/clasmatch/flownet"
)

// CRMMSuite exercises the rank-by-rank driver against §8.4's S2 scenario.
type CRMMSuite struct {
	suite.Suite
}

// s2Instance is spec §8.4 S2: a1 ties b1/b2 at rank 1; a2 strictly prefers
// b1 over b2. A rank-maximal matching places both applicants at rank 1
// (a1-b2, a2-b1), beating any matching that forces a1 to rank 2.
func (s *CRMMSuite) s2Instance() *domain.Instance {
	inst, err := domain.NewInstance(
		domain.WithApplicant(domain.Vertex{ID: "a1", UpperQuota: 1, Prefs: []domain.PreferenceEntry{
			{Rank: 1, Partner: "b1"}, {Rank: 1, Partner: "b2"},
		}}),
		domain.WithApplicant(domain.Vertex{ID: "a2", UpperQuota: 1, Prefs: []domain.PreferenceEntry{
			{Rank: 1, Partner: "b1"}, {Rank: 2, Partner: "b2"},
		}}),
		domain.WithPost(domain.Vertex{ID: "b1", UpperQuota: 1, Prefs: []domain.PreferenceEntry{
			{Rank: 1, Partner: "a1"}, {Rank: 2, Partner: "a2"},
		}}),
		domain.WithPost(domain.Vertex{ID: "b2", UpperQuota: 1, Prefs: []domain.PreferenceEntry{
			{Rank: 1, Partner: "a1"}, {Rank: 2, Partner: "a2"},
		}}),
	)
	s.Require().NoError(err)
	return inst
}

func (s *CRMMSuite) TestS2RankMaximal() {
	inst := s.s2Instance()
	m, err := crmm.Compute(context.Background(), inst, flownet.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), 1, m.Size("a1"))
	require.Equal(s.T(), 1, m.Size("a2"))
	require.Equal(s.T(), 1, m.Partners("a1")[0].Rank)
	require.Equal(s.T(), 1, m.Partners("a2")[0].Rank)
}

// TestDeterminism is §8.2's round-trip property: running CRMM twice on the
// same instance yields the same matching.
func (s *CRMMSuite) TestDeterminism() {
	inst := s.s2Instance()
	m1, err := crmm.Compute(context.Background(), inst, flownet.DefaultOptions())
	require.NoError(s.T(), err)
	m2, err := crmm.Compute(context.Background(), inst, flownet.DefaultOptions())
	require.NoError(s.T(), err)

	require.Equal(s.T(), m1["a1"], m2["a1"])
	require.Equal(s.T(), m1["a2"], m2["a2"])
}

// TestDeleteHookFiresOncePerRound exercises WithDeleteHook: every rank
// round calls DeleteEdges exactly twice (T->S then U->S), so a 2-rank
// instance should report exactly 4 hook calls.
func (s *CRMMSuite) TestDeleteHookFiresOncePerRound() {
	inst := s.s2Instance()
	var calls []string
	hook := crmm.WithDeleteHook(func(label string, count int) {
		calls = append(calls, label)
	})

	_, err := crmm.Compute(context.Background(), inst, flownet.DefaultOptions(), hook)
	require.NoError(s.T(), err)

	require.Equal(s.T(), []string{"T->S", "U->S", "T->S", "U->S"}, calls)
}

func TestCRMMSuite(t *testing.T) {
	suite.Run(t, new(CRMMSuite))
}

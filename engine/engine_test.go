package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/clasmatch/clasmatch/domain"
	"github.com/clasmatch/clasmatch/engine"
)

// EngineSuite exercises Compute's dispatch across all three algorithms
// against small instances — here the concern is the orchestration layer
// itself: Report shape, default Options, and RunID propagation.
type EngineSuite struct {
	suite.Suite
}

// s1Instance has two applicants who agree on nothing, each rank-1 for a
// distinct post — the simplest complete-matching case.
func (s *EngineSuite) s1Instance() *domain.Instance {
	inst, err := domain.NewInstance(
		domain.WithApplicant(domain.Vertex{ID: "a1", UpperQuota: 1, Prefs: []domain.PreferenceEntry{
			{Rank: 1, Partner: "b1"},
		}}),
		domain.WithApplicant(domain.Vertex{ID: "a2", UpperQuota: 1, Prefs: []domain.PreferenceEntry{
			{Rank: 1, Partner: "b2"},
		}}),
		domain.WithPost(domain.Vertex{ID: "b1", UpperQuota: 1, Prefs: []domain.PreferenceEntry{
			{Rank: 1, Partner: "a1"},
		}}),
		domain.WithPost(domain.Vertex{ID: "b2", UpperQuota: 1, Prefs: []domain.PreferenceEntry{
			{Rank: 1, Partner: "a2"},
		}}),
	)
	s.Require().NoError(err)
	return inst
}

func (s *EngineSuite) TestCPMDefaultOptions() {
	inst := s.s1Instance()
	m, report, err := engine.Compute(context.Background(), inst, engine.CPM, engine.DefaultOptions())
	require.NoError(s.T(), err)
	require.True(s.T(), report.Feasible)
	require.Equal(s.T(), engine.CPM, report.Algorithm)
	require.NotEmpty(s.T(), report.RunID)
	require.True(s.T(), m.HasPartner("a1", "b1"))
	require.True(s.T(), m.HasPartner("a2", "b2"))
	require.Len(s.T(), report.RankHistogram, inst.MaxRank())
}

func (s *EngineSuite) TestCRMMZeroValueOptions() {
	inst := s.s1Instance()
	// The zero-value Options (no Logger/Metrics/Tracer set) must still
	// work: normalize() fills in silent/no-op defaults.
	m, report, err := engine.Compute(context.Background(), inst, engine.CRMM, engine.Options{})
	require.NoError(s.T(), err)
	require.True(s.T(), report.Feasible)
	require.Equal(s.T(), 2, m.Size("a1")+m.Size("a2"))
}

func (s *EngineSuite) TestRSMVerifiesRelaxedStability() {
	inst, err := domain.NewInstance(
		domain.WithApplicant(domain.Vertex{ID: "r1", UpperQuota: 1, Prefs: []domain.PreferenceEntry{{Rank: 1, Partner: "h"}}}),
		domain.WithApplicant(domain.Vertex{ID: "r2", UpperQuota: 1, Prefs: []domain.PreferenceEntry{{Rank: 1, Partner: "h"}}}),
		domain.WithPost(domain.Vertex{ID: "h", LowerQuota: 1, UpperQuota: 2, Prefs: []domain.PreferenceEntry{
			{Rank: 1, Partner: "r1"}, {Rank: 2, Partner: "r2"},
		}}),
	)
	s.Require().NoError(err)

	opts := engine.DefaultOptions()
	opts.VerifyRelaxedStable = true
	m, report, err := engine.Compute(context.Background(), inst, engine.RSM, opts)
	require.NoError(s.T(), err)
	require.True(s.T(), report.Feasible)
	require.True(s.T(), report.Verified)
	require.True(s.T(), report.RelaxedStable)
	require.Equal(s.T(), 2, m.Size("h"))
}

func (s *EngineSuite) TestUnknownAlgorithm() {
	inst := s.s1Instance()
	_, _, err := engine.Compute(context.Background(), inst, engine.Algorithm(99), engine.DefaultOptions())
	require.Error(s.T(), err)
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

package flownet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/clasmatch/clasmatch/flownet"
)

// DinicSuite exercises MaxFlow under the same scenario shapes the teacher
// uses for its own Dinic implementation, adapted to the arena API.
type DinicSuite struct {
	suite.Suite
}

func (s *DinicSuite) TestSingleEdge() {
	n := flownet.NewNetwork()
	a := n.AddNode("A")
	b := n.AddNode("B")
	n.AddEdge(a, b, 7, 0)

	mf, err := n.MaxFlow(context.Background(), a, b, flownet.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7, mf)
}

func (s *DinicSuite) TestMultiPath() {
	n := flownet.NewNetwork()
	a := n.AddNode("A")
	b := n.AddNode("B")
	c := n.AddNode("C")
	n.AddEdge(a, b, 5, 0)
	n.AddEdge(a, c, 4, 0)
	n.AddEdge(c, b, 3, 0)

	mf, err := n.MaxFlow(context.Background(), a, b, flownet.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8, mf) // 5 direct + 3 via C
}

// TestComplexNetwork mirrors the teacher's seven-vertex example network,
// expecting the same max flow of 15.
func (s *DinicSuite) TestComplexNetwork() {
	n := flownet.NewNetwork()
	src := n.AddNode("S")
	a := n.AddNode("A")
	b := n.AddNode("B")
	c := n.AddNode("C")
	d := n.AddNode("D")
	e := n.AddNode("E")
	sink := n.AddNode("T")

	n.AddEdge(src, a, 5, 0)
	n.AddEdge(src, c, 15, 0)
	n.AddEdge(a, b, 8, 0)
	n.AddEdge(b, d, 10, 0)
	n.AddEdge(c, d, 5, 0)
	n.AddEdge(c, e, 10, 0)
	n.AddEdge(e, d, 10, 0)
	n.AddEdge(d, sink, 10, 0)
	n.AddEdge(e, sink, 5, 0)

	mf, err := n.MaxFlow(context.Background(), src, sink, flownet.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 15, mf)
}

// TestFlowSymmetryInvariant verifies the flow-symmetry invariant (§8.1):
// for every edge pair, f(e) + f(e') == 0, checked here on a single edge
// pair after MaxFlow has saturated it.
func (s *DinicSuite) TestFlowSymmetryInvariant() {
	n := flownet.NewNetwork()
	a := n.AddNode("A")
	b := n.AddNode("B")
	n.AddEdge(a, b, 4, 2)

	_, err := n.MaxFlow(context.Background(), a, b, flownet.DefaultOptions())
	require.NoError(s.T(), err)

	fwdFlow, _, _ := n.EdgeFlow(0)
	revFlow, _, _ := n.EdgeFlow(1)
	require.Equal(s.T(), 0, fwdFlow+revFlow)
}

func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}

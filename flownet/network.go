package flownet

import "fmt"

// Network is the node/edge arena described in the package doc: a dense
// vector of nodes indexed by NodeID, a name→id index for lookup by the
// classification-tree naming convention, and a flat vector of edges laid
// out in forward/reverse pairs.
type Network struct {
	nodes  []node
	byName map[string]NodeID
	edges  []edge
}

// NewNetwork returns an empty arena. Callers typically add "source" and
// "sink" first so they land at ids 0 and 1, matching the invariant the
// classification-tree builder relies on.
func NewNetwork() *Network {
	return &Network{byName: make(map[string]NodeID)}
}

// AddNode registers a node under name and returns its id. Calling AddNode
// twice with the same name is a programmer error (the classification-tree
// builder never does it) and panics.
func (n *Network) AddNode(name string) NodeID {
	if _, exists := n.byName[name]; exists {
		panic(fmt.Errorf("%w: %q", ErrDuplicateNodeName, name))
	}
	id := NodeID(len(n.nodes))
	n.nodes = append(n.nodes, node{name: name, label: LabelU})
	n.byName[name] = id
	return id
}

// ID looks up a node's id by name.
func (n *Network) ID(name string) (NodeID, error) {
	id, ok := n.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	return id, nil
}

// Name returns the node name registered for id.
func (n *Network) Name(id NodeID) string { return n.nodes[id].name }

// NumNodes returns the number of nodes currently in the arena.
func (n *Network) NumNodes() int { return len(n.nodes) }

// Label returns id's current decomposition label.
func (n *Network) Label(id NodeID) Label { return n.nodes[id].label }

// ResetLabels sets every node's decomposition label back to U. CRMM calls
// this between rank rounds before re-decomposing; CPM decomposes only
// once and never needs it.
func (n *Network) ResetLabels() {
	for i := range n.nodes {
		n.nodes[i].label = LabelU
	}
}

// AddEdge appends a forward edge u→v with the given capacity and rank,
// plus its paired zero-capacity, zero-rank reverse edge, and updates both
// endpoints' adjacency lists. A self-loop (u == v) is rejected silently,
// per the reference engine's semantics; no edges are added. Adding edges
// after flow has already been pushed elsewhere in the network is legal:
// the new pair starts at flow 0.
func (n *Network) AddEdge(u, v NodeID, capacity, rank int) {
	if u == v {
		return
	}
	fwdIdx := len(n.edges)
	n.edges = append(n.edges, edge{from: u, to: v, cap: capacity, rank: rank})
	n.nodes[u].adj = append(n.nodes[u].adj, fwdIdx)

	revIdx := len(n.edges)
	n.edges = append(n.edges, edge{from: v, to: u, cap: 0, rank: 0})
	n.nodes[v].adj = append(n.nodes[v].adj, revIdx)
}

// DeleteEdges scans every edge and, for any whose tail carries labelU and
// head carries labelV, zeroes capacity and flow on it and on its paired
// reverse edge. This removes the edge from subsequent max-flow rounds
// while preserving index alignment (the i^1 pairing is never disturbed).
// It returns the number of forward edges matched and deleted, so callers
// can report how much pruning each round actually did.
func (n *Network) DeleteEdges(labelU, labelV Label) int {
	deleted := 0
	for i := 0; i < len(n.edges); i += 2 {
		e := &n.edges[i]
		if n.nodes[e.from].label == labelU && n.nodes[e.to].label == labelV {
			e.cap, e.flow = 0, 0
			rev := &n.edges[i^1]
			rev.cap, rev.flow = 0, 0
			deleted++
		}
	}
	return deleted
}

// ResidualEdgeRef names one residual edge by its arena index, alongside
// its paired reverse.
type ResidualEdgeRef struct {
	// Index is the forward edge's position in the arena.
	Index int
	// From, To are the forward edge's endpoints.
	From, To NodeID
	// Rank is the forward edge's rank (the reverse edge always carries 0).
	Rank int
	// ReverseRank is the rank carried by the paired reverse edge — the
	// rank of the edge that was originally pushed forward across this
	// pair, used by the reconstructor to recover a match's rank.
	ReverseRank int
}

// ResidualEdges returns every edge currently satisfying the residual
// predicate: flow < capacity on the forward direction, or positive flow
// on the paired reverse (meaning that flow can be cancelled back).
func (n *Network) ResidualEdges() []ResidualEdgeRef {
	var out []ResidualEdgeRef
	for i := 0; i < len(n.edges); i++ {
		e := n.edges[i]
		rev := n.edges[i^1]
		if residual(e, rev) {
			out = append(out, ResidualEdgeRef{
				Index:       i,
				From:        e.from,
				To:          e.to,
				Rank:        e.rank,
				ReverseRank: rev.rank,
			})
		}
	}
	return out
}

// EdgeFlow returns the current flow and capacity of the edge at index i,
// for tests asserting the flow-symmetry and deletion invariants.
func (n *Network) EdgeFlow(i int) (flow, capacity, rank int) {
	e := n.edges[i]
	return e.flow, e.cap, e.rank
}

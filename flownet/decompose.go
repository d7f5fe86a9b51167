package flownet

// DecomposeSTU labels every node S, T, or leaves it U, as specified by
// §4.1: find_S_nodes marks every node reachable from source along residual
// edges; find_T_nodes marks every node that can reach sink along residual
// edges (walked in reverse). Labels start at U (set at AddNode time, or by
// a prior ResetLabels); if a node is visited by both passes, find_T runs
// second and wins, matching the reference engine's collision rule.
// Callers that reuse a network across rounds (CRMM) must ResetLabels
// before decomposing again; CPM decomposes only once and never needs to.
func (n *Network) DecomposeSTU(source, sink NodeID) {
	n.findSNodes(source)
	n.findTNodes(sink)
}

func (n *Network) findSNodes(source NodeID) {
	visited := make([]bool, len(n.nodes))
	visited[source] = true
	queue := []NodeID{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		n.nodes[u].label = LabelS
		for _, ei := range n.nodes[u].adj {
			e := n.edges[ei]
			rev := n.edges[ei^1]
			if residual(e, rev) && !visited[e.to] {
				visited[e.to] = true
				queue = append(queue, e.to)
			}
		}
	}
}

func (n *Network) findTNodes(sink NodeID) {
	visited := make([]bool, len(n.nodes))
	visited[sink] = true
	queue := []NodeID{sink}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		n.nodes[u].label = LabelT
		for _, ei := range n.nodes[u].adj {
			e := n.edges[ei]
			rev := n.edges[ei^1]
			// Traveling from u to e.to along the *reverse* residual edge:
			// residual(rev, e) tests rev.flow < rev.cap || e.flow > 0.
			if residual(rev, e) && !visited[e.to] {
				visited[e.to] = true
				queue = append(queue, e.to)
			}
		}
	}
}

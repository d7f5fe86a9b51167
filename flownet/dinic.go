package flownet

import (
	"context"
	"fmt"
)

// MaxFlow pushes flow from source to sink using Dinic's algorithm: level
// BFS to build a layered residual graph, then repeated blocking-flow DFS
// passes over it, until no augmenting path remains.
//
// ctx is not polled: once started, a MaxFlow call runs to completion.
//
// Complexity: O(E·√V) on the unit-capacity classification networks this
// engine is built for; O(V²·E) in general.
func (n *Network) MaxFlow(ctx context.Context, source, sink NodeID, opts Options) (int, error) {
	opts.normalize()
	if int(source) >= len(n.nodes) || int(sink) >= len(n.nodes) {
		return 0, fmt.Errorf("%w: source or sink out of range", ErrUnknownNode)
	}

	total := 0
	dist := make([]int, len(n.nodes))
	iter := make([]int, len(n.nodes))
	augmentCount := 0

	for {
		if !n.bfsLevels(source, sink, dist) {
			break
		}
		for i := range iter {
			iter[i] = 0
		}
		for {
			pushed := n.dfsPush(source, sink, maxInt, dist, iter)
			if pushed == 0 {
				break
			}
			total += pushed
			augmentCount++
			if opts.Verbose {
				opts.LogFunc("flownet: pushed %d, total %d", pushed, total)
			}
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}
	return total, nil
}

const maxInt = int(^uint(0) >> 1)

// bfsLevels assigns dist[v] = distance from source along residual edges,
// using n+1 as the "unreached" sentinel, and reports whether sink was
// reached.
func (n *Network) bfsLevels(source, sink NodeID, dist []int) bool {
	unreached := len(n.nodes) + 1
	for i := range dist {
		dist[i] = unreached
	}
	dist[source] = 0
	queue := make([]NodeID, 0, len(n.nodes))
	queue = append(queue, source)
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		if u == sink {
			break
		}
		for _, ei := range n.nodes[u].adj {
			e := n.edges[ei]
			if e.flow < e.cap && dist[e.to] > dist[u]+1 {
				dist[e.to] = dist[u] + 1
				queue = append(queue, e.to)
			}
		}
	}
	return dist[sink] != unreached
}

// dfsPush sends up to `flow` units from u toward sink along edges that lie
// on the current level graph (dist[v] == dist[u]+1), using iter[u] as the
// per-node cursor into adjacency so repeated calls within one blocking-flow
// round never re-scan an already-exhausted neighbor.
func (n *Network) dfsPush(u, sink NodeID, flow int, dist, iter []int) int {
	if u == sink || flow == 0 {
		return flow
	}
	adj := n.nodes[u].adj
	for ; iter[u] < len(adj); iter[u]++ {
		ei := adj[iter[u]]
		e := n.edges[ei]
		if dist[e.to] != dist[u]+1 {
			continue
		}
		available := e.cap - e.flow
		if available <= 0 {
			continue
		}
		send := flow
		if available < send {
			send = available
		}
		pushed := n.dfsPush(e.to, sink, send, dist, iter)
		if pushed > 0 {
			n.edges[ei].flow += pushed
			n.edges[ei^1].flow -= pushed
			return pushed
		}
	}
	return 0
}

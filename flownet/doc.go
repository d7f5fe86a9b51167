// Package flownet implements the flow-network engine the classified
// matching drivers build on: a dense node/edge arena, Dinic's max-flow
// algorithm, residual-edge extraction, S/T/U node decomposition, and typed
// edge deletion.
//
// # Arena layout
//
// Nodes live in a dense []node slice indexed by an integer id assigned at
// AddNode time, with a name→id map for lookup by the classification-tree
// naming convention ("source", "sink", "C_*_a", ...). Edges live in a
// []edge slice where AddEdge always appends a forward/reverse pair; for
// every forward edge at index i the paired reverse lives at i^1 (an edge
// pair coupling fundamental to residual-predicate and delete-edges
// correctness, per the network's design notes).
//
// # API
//
// NewNetwork() starts an empty arena. AddNode registers a named node and
// returns its id. AddEdge(u, v, capacity, rank) appends the forward/reverse
// pair and updates adjacency (a self-loop, u==v, is rejected silently, per
// the reference semantics). MaxFlow(ctx, source, sink) runs Dinic's
// algorithm: alternating level-graph BFS and blocking-flow DFS with a
// per-node traversal cursor reset each round. DecomposeSTU(source, sink)
// labels every node S (source-reachable in the residual graph), T
// (sink-reachable along reverse residual edges), or leaves it U. DeleteEdges
// removes every edge whose endpoints carry a given label pair by zeroing
// capacity and flow on both members of the pair. ResidualEdges returns every
// edge satisfying the residual predicate, each together with its paired
// edge's rank.
//
// # Errors
//
//	ErrUnknownNode - ID or MaxFlow referenced a node name/id absent from the arena.
//
// # Integration
//
// classtree builds the initial network H₀ over this package's arena; cpm,
// crmm and rsm drive MaxFlow/DecomposeSTU/DeleteEdges repeatedly; reconstruct
// reads ResidualEdges to recover the matching.
package flownet

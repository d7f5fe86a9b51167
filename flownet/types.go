package flownet

// NodeID indexes a node in the arena. source always has id 0, sink id 1;
// classification-tree nodes are assigned sequentially from 2.
type NodeID int

// Label is a node's decomposition tag after an S/T/U pass. It is modeled
// as a small enum, not a string, per the network's design notes.
type Label uint8

const (
	// LabelU is the default label: neither source- nor sink-reachable in
	// the residual graph.
	LabelU Label = iota
	// LabelS marks a node reachable from source along residual edges.
	LabelS
	// LabelT marks a node that can reach sink along residual edges.
	LabelT
)

func (l Label) String() string {
	switch l {
	case LabelS:
		return "S"
	case LabelT:
		return "T"
	default:
		return "U"
	}
}

// node is the arena record backing one flow-network vertex.
type node struct {
	name  string
	label Label
	adj   []int // indices into the edge arena, in insertion order
}

// edge is the arena record backing one directed capacity edge. Edges are
// always appended in forward/reverse pairs: for edge index i, i^1 is the
// paired edge in the opposite direction.
type edge struct {
	from, to NodeID
	cap      int
	flow     int
	rank     int
}

// residual reports whether e (together with its paired reverse rev)
// currently admits an augmenting unit of flow: either the forward
// direction still has spare capacity, or the paired edge has flow pushed
// on it that can be cancelled.
func residual(e, rev edge) bool {
	return e.flow < e.cap || rev.flow > 0
}

// Options configures MaxFlow. Mirrors the teacher's FlowOptions shape
// (Epsilon/Verbose/LevelRebuildInterval), narrowed to the integer-capacity
// network this engine operates on.
type Options struct {
	// Verbose, if true, logs each augmenting push via the supplied
	// LogFunc (defaulting to a no-op).
	Verbose bool
	// LevelRebuildInterval, if > 0, forces a fresh level-graph BFS every
	// N blocking-flow augmentations within one MaxFlow call, rather than
	// draining the current level graph completely first.
	LevelRebuildInterval int
	// LogFunc receives one line per augmentation when Verbose is set.
	LogFunc func(format string, args ...any)
}

// DefaultOptions returns production-safe defaults: non-verbose, no forced
// level-graph rebuilds.
func DefaultOptions() Options {
	return Options{LogFunc: func(string, ...any) {}}
}

func (o *Options) normalize() {
	if o.LogFunc == nil {
		o.LogFunc = func(string, ...any) {}
	}
}

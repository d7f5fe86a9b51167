package flownet

import "errors"

// Sentinel errors for flownet operations.
var (
	// ErrUnknownNode indicates an operation referenced a node id or name
	// absent from the arena.
	ErrUnknownNode = errors.New("flownet: unknown node")

	// ErrUnknownEdge indicates an operation referenced an edge index
	// outside the arena.
	ErrUnknownEdge = errors.New("flownet: unknown edge")

	// ErrDuplicateNodeName indicates AddNode was called twice with the
	// same name.
	ErrDuplicateNodeName = errors.New("flownet: duplicate node name")
)

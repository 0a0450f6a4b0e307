package models

import "errors"

// Sentinel errors for topology validation.
var (
	ErrNegativeNodeID     = errors.New("node id must be non-negative")
	ErrNeighborNotInGraph = errors.New("neighbor is not a node of the graph")
	ErrAsymmetricEdge     = errors.New("edge is not listed in both directions")
	ErrIncompleteSnapshot = errors.New("snapshot node ids are not contiguous from 0")
)

// Package graph holds the fixed adjacency structure served by the backend
// and converts it into the transfer representation.
//
// A Topology is a static table of neighbor lists indexed by node id.
// Undirected edges are normally stored twice, once per endpoint, but the
// served instance lists 4-1 and 4-3 only from node 4 and is returned as is;
// OneWayEdges reports such pairs without rejecting them. Nothing here is
// shared between calls: Fixed returns a new table each time and Snapshot
// copies every list, so concurrent callers never observe each other.
package graph

import (
	"fmt"
	"strings"

	"github.com/HenrikBaltazar/linked-list-graph/internal/models"
)

// Topology is an adjacency list indexed by node id.
type Topology [][]models.NodeID

// Fixed returns the five-node instance served by get_graph.
func Fixed() Topology {
	return Topology{
		0: {1, 4},
		1: {0, 2, 3},
		2: {1, 3},
		3: {1, 2},
		4: {0, 1, 3},
	}
}

// Len returns the number of nodes.
func (t Topology) Len() int { return len(t) }

// Neighbors returns node id's neighbor list in insertion order. The slice is
// owned by t.
func (t Topology) Neighbors(id models.NodeID) []models.NodeID {
	if id < 0 || id >= len(t) {
		return nil
	}

	return t[id]
}

// Validate checks closure: every neighbor must be a non-negative id that is
// itself a node. Symmetry is not required here; see OneWayEdges.
func (t Topology) Validate() error {
	for a, neighbors := range t {
		for _, b := range neighbors {
			if b < 0 {
				return fmt.Errorf("graph: node %d lists %d: %w", a, b, models.ErrNegativeNodeID)
			}

			if b >= len(t) {
				return fmt.Errorf("graph: node %d lists %d: %w", a, b, models.ErrNeighborNotInGraph)
			}
		}
	}

	return nil
}

// OneWayEdges returns every pair [a, b] where a lists b but b does not list
// a, in node order. t must already pass Validate.
func (t Topology) OneWayEdges() [][2]models.NodeID {
	var out [][2]models.NodeID

	for a, neighbors := range t {
		for _, b := range neighbors {
			if !contains(t.Neighbors(b), a) {
				out = append(out, [2]models.NodeID{a, b})
			}
		}
	}

	return out
}

// CheckSymmetric reports the first one-way edge as ErrAsymmetricEdge.
func (t Topology) CheckSymmetric() error {
	if edges := t.OneWayEdges(); len(edges) > 0 {
		a, b := edges[0][0], edges[0][1]

		return fmt.Errorf("graph: %d->%d has no %d->%d: %w", a, b, b, a, models.ErrAsymmetricEdge)
	}

	return nil
}

// Snapshot converts t into its transfer representation. Every node gets an
// entry, including nodes with no neighbors, and list order is preserved.
func (t Topology) Snapshot() *models.Snapshot {
	adj := make(map[models.NodeID][]models.NodeID, len(t))
	for id, neighbors := range t {
		cp := make([]models.NodeID, len(neighbors))
		copy(cp, neighbors)
		adj[id] = cp
	}

	return &models.Snapshot{Adj: adj}
}

// String renders the adjacency table as "[[1 4] [0 2 3] ...]".
func (t Topology) String() string {
	var b strings.Builder

	b.WriteByte('[')

	for i, neighbors := range t {
		if i > 0 {
			b.WriteByte(' ')
		}

		fmt.Fprint(&b, neighbors)
	}

	b.WriteByte(']')

	return b.String()
}

// FromSnapshot rebuilds a Topology from a received snapshot. Node ids must
// run contiguously from 0 and every neighbor must be a node.
func FromSnapshot(s *models.Snapshot) (Topology, error) {
	if s == nil {
		return nil, fmt.Errorf("graph: nil snapshot: %w", models.ErrIncompleteSnapshot)
	}

	t := make(Topology, len(s.Adj))
	for id := range t {
		neighbors, ok := s.Adj[id]
		if !ok {
			return nil, fmt.Errorf("graph: missing node %d: %w", id, models.ErrIncompleteSnapshot)
		}

		cp := make([]models.NodeID, len(neighbors))
		copy(cp, neighbors)
		t[id] = cp
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

func contains(list []models.NodeID, id models.NodeID) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}

	return false
}

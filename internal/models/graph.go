// Package models defines data types exchanged across the graph backend.
package models

import "sort"

// NodeID identifies a node. Identifiers are small non-negative integers.
type NodeID = int

// Snapshot is the transfer representation of a graph: every node mapped to
// its ordered neighbor list. JSON encodes the keys as decimal strings.
type Snapshot struct {
	Adj map[NodeID][]NodeID `json:"adj"`
}

// Nodes returns the snapshot's node identifiers in ascending order.
func (s *Snapshot) Nodes() []NodeID {
	ids := make([]NodeID, 0, len(s.Adj))
	for id := range s.Adj {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	return ids
}

// EdgeCount returns the number of distinct undirected edges. A pair listed
// in one direction only still counts once.
func (s *Snapshot) EdgeCount() int {
	seen := make(map[[2]NodeID]struct{})
	for a, neighbors := range s.Adj {
		for _, b := range neighbors {
			seen[[2]NodeID{min(a, b), max(a, b)}] = struct{}{}
		}
	}

	return len(seen)
}

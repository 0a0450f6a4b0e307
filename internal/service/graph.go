// Package service provides the business logic behind registered commands.
package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/HenrikBaltazar/linked-list-graph/internal/graph"
	"github.com/HenrikBaltazar/linked-list-graph/internal/models"
)

// TopologySource builds the adjacency table served by GraphService. It is
// called once per request and must return a fresh table.
type TopologySource func() graph.Topology

// GraphService builds graph snapshots with context-aware logging.
type GraphService struct {
	source TopologySource
	log    *logrus.Logger
}

// NewGraphService creates a GraphService serving the fixed five-node graph.
func NewGraphService(log *logrus.Logger) *GraphService {
	return NewGraphServiceWithSource(graph.Fixed, log)
}

// NewGraphServiceWithSource creates a GraphService backed by source.
func NewGraphServiceWithSource(source TopologySource, log *logrus.Logger) *GraphService {
	return &GraphService{source: source, log: log}
}

// GetGraph constructs the topology, checks closure and returns its snapshot
// exactly as built. One-way edges are logged, not rejected.
func (s *GraphService) GetGraph(ctx context.Context) (*models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	topo := s.source()

	if err := topo.Validate(); err != nil {
		return nil, fmt.Errorf("building snapshot: %w", err)
	}

	snap := topo.Snapshot()

	s.log.WithFields(logrus.Fields{
		"nodes": topo.Len(),
		"edges": snap.EdgeCount(),
		"adj":   topo.String(),
	}).Debug("graph.get")

	if oneWay := topo.OneWayEdges(); len(oneWay) > 0 {
		s.log.WithField("one_way", fmt.Sprint(oneWay)).Warn("graph.get: edges listed in one direction only")
	}

	return snap, nil
}

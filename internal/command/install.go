package command

import (
	"context"

	"github.com/HenrikBaltazar/linked-list-graph/internal/models"
)

// GetGraph is the name of the graph snapshot command.
const GetGraph = "get_graph"

// GraphProvider produces graph snapshots.
type GraphProvider interface {
	GetGraph(ctx context.Context) (*models.Snapshot, error)
}

// Install registers the backend's command table on r.
func Install(r *Registry, graphs GraphProvider) error {
	return r.Register(GetGraph, func(ctx context.Context) (any, error) {
		return graphs.GetGraph(ctx)
	})
}

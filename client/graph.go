package client

import (
	"context"
	"fmt"

	"github.com/HenrikBaltazar/linked-list-graph/internal/graph"
)

// GetGraphCommand is the server command returning the graph snapshot.
const GetGraphCommand = "get_graph"

// GraphService wraps the graph snapshot command.
type GraphService struct {
	c *Client
}

// Get invokes get_graph and checks the received snapshot is complete and
// closed over its node set. One-way edges are accepted as served.
func (s *GraphService) Get(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	if err := s.c.Invoke(ctx, GetGraphCommand, &snap); err != nil {
		return nil, err
	}
	if _, err := graph.FromSnapshot(&snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	return &snap, nil
}

package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/HenrikBaltazar/linked-list-graph/internal/command"
	"github.com/HenrikBaltazar/linked-list-graph/internal/models"
	"github.com/HenrikBaltazar/linked-list-graph/internal/service"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Fetch the graph snapshot from the server",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			snap, err := apiClient.Graph.Get(context.Background())
			if err != nil {
				fatal("get", err)
			}
			outputSnapshot(snap)
		},
	}
}

func newLocalCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "local",
		Short: "Run get_graph in-process without a server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := localSnapshot(context.Background(), verbose)
			if err != nil {
				return err
			}
			outputSnapshot(snap)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log the adjacency structure to stderr")
	return cmd
}

// localSnapshot dispatches get_graph through a freshly built command table.
func localSnapshot(ctx context.Context, verbose bool) (*models.Snapshot, error) {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	reg := command.NewRegistry(log)
	if err := command.Install(reg, service.NewGraphService(log)); err != nil {
		return nil, fmt.Errorf("install commands: %w", err)
	}

	result, err := reg.Invoke(ctx, command.GetGraph)
	if err != nil {
		return nil, err
	}

	snap, ok := result.(*models.Snapshot)
	if !ok {
		return nil, fmt.Errorf("unexpected %s result type %T", command.GetGraph, result)
	}
	return snap, nil
}

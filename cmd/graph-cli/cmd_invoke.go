package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"
)

func newInvokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invoke <command>",
		Short: "Invoke a named server command",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			raw, err := apiClient.InvokeRaw(context.Background(), args[0])
			if err != nil {
				fatal("invoke", err)
			}
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				fatal("decode", err)
			}
			output(v)
		},
	}
}

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List registered server commands",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			names, err := apiClient.Commands(context.Background())
			if err != nil {
				fatal("commands", err)
			}
			if flagFmt == "table" {
				rows := make([][]string, len(names))
				for i, n := range names {
					rows[i] = []string{n}
				}
				formatTable([]string{"COMMAND"}, rows)
				return
			}
			output(names)
		},
	}
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show server health",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Health(context.Background())
			if err != nil {
				fatal("health", err)
			}
			output(resp)
		},
	}
}

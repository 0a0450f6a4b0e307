package main

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// executeArgs runs the given root command with args and returns any error.
// It suppresses cobra's usage/error output so test output stays clean.
func executeArgs(t *testing.T, root *cobra.Command, args ...string) error {
	t.Helper()
	root.SetOut(&strings.Builder{})
	root.SetErr(&strings.Builder{})
	root.SetArgs(args)
	_, err := root.ExecuteC()
	return err
}

// newTestRoot builds the production command tree with client setup stubbed
// out so arg validation can be exercised without a server.
func newTestRoot() *cobra.Command {
	root := newRootCmd()
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {}
	for _, c := range root.Commands() {
		c.Run = func(cmd *cobra.Command, args []string) {}
		c.RunE = nil
	}
	return root
}

func TestCommandArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "get takes no args", args: []string{"get"}},
		{name: "get rejects args", args: []string{"get", "0"}, wantErr: true},
		{name: "invoke requires a command", args: []string{"invoke"}, wantErr: true},
		{name: "invoke with command", args: []string{"invoke", "get_graph"}},
		{name: "invoke rejects extra args", args: []string{"invoke", "get_graph", "x"}, wantErr: true},
		{name: "commands takes no args", args: []string{"commands"}},
		{name: "local takes no args", args: []string{"local", "x"}, wantErr: true},
		{name: "local verbose flag", args: []string{"local", "-v"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resetFlags(t)
			err := executeArgs(t, newTestRoot(), tc.args...)
			if (err != nil) != tc.wantErr {
				t.Errorf("args %v: err=%v, wantErr=%v", tc.args, err, tc.wantErr)
			}
		})
	}
}

func TestLocalSnapshot(t *testing.T) {
	snap, err := localSnapshot(context.Background(), false)
	if err != nil {
		t.Fatalf("localSnapshot: %v", err)
	}

	want := map[int][]int{0: {1, 4}, 1: {0, 2, 3}, 2: {1, 3}, 3: {1, 2}, 4: {0, 1, 3}}
	if !reflect.DeepEqual(snap.Adj, want) {
		t.Errorf("got %v, want %v", snap.Adj, want)
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/HenrikBaltazar/linked-list-graph/internal/models"
)

func formatJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: encode json: %v\n", err)
		os.Exit(1)
	}
}

func formatTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			parts[i] = fmt.Sprintf("%-*s", w, cell)
		}
		fmt.Println(strings.Join(parts, "  "))
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}
}

// snapshotRows renders one row per node in ascending id order.
func snapshotRows(s *models.Snapshot) [][]string {
	ids := s.Nodes()
	rows := make([][]string, len(ids))
	for i, id := range ids {
		neighbors := make([]string, len(s.Adj[id]))
		for j, n := range s.Adj[id] {
			neighbors[j] = strconv.Itoa(n)
		}
		rows[i] = []string{strconv.Itoa(id), strings.Join(neighbors, ", ")}
	}
	return rows
}

func outputSnapshot(s *models.Snapshot) {
	if flagFmt == "table" {
		formatTable([]string{"NODE", "NEIGHBORS"}, snapshotRows(s))
		return
	}
	formatJSON(s)
}

func output(v any) {
	// Table rendering is type-specific; generic values fall back to JSON.
	formatJSON(v)
}

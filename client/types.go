package client

import "github.com/HenrikBaltazar/linked-list-graph/internal/models"

// Snapshot maps each node id to its ordered neighbor list.
type Snapshot = models.Snapshot

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status        string   `json:"status"`
	Version       string   `json:"version"`
	Commands      []string `json:"commands"`
	WSClients     int      `json:"ws_clients"`
	UptimeSeconds float64  `json:"uptime_seconds"`
}

// Package api provides HTTP handlers for graphd.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ClientCounter reports active WebSocket connections. *ws.Hub satisfies it.
type ClientCounter interface {
	ClientCount() int
}

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	registry  CommandRegistry
	clients   ClientCounter
	version   string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler. clients may be nil.
func NewHealthHandler(registry CommandRegistry, clients ClientCounter, version string) *HealthHandler {
	return &HealthHandler{
		registry:  registry,
		clients:   clients,
		version:   version,
		startTime: time.Now(),
	}
}

// healthResponse is the JSON payload returned by the health endpoint.
type healthResponse struct {
	Status        string   `json:"status"`
	Version       string   `json:"version"`
	Commands      []string `json:"commands"`
	WSClients     int      `json:"ws_clients"`
	UptimeSeconds float64  `json:"uptime_seconds"`
}

// Liveness handles GET /api/v1/health.
func (h *HealthHandler) Liveness(c *gin.Context) {
	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		Commands:      h.registry.Names(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	if h.clients != nil {
		resp.WSClients = h.clients.ClientCount()
	}

	c.JSON(http.StatusOK, resp)
}

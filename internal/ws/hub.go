// Package ws implements the WebSocket invoke channel: a hub that tracks
// front-end connections and clients that dispatch command requests.
package ws

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/HenrikBaltazar/linked-list-graph/internal/metrics"
)

const registerBuffer = 64

// drainTimeout is how long the hub waits for clients to flush after shutdown.
const drainTimeout = 3 * time.Second

// Hub tracks active WebSocket clients.
// All client map mutations happen exclusively in the Run goroutine.
type Hub struct {
	clients    map[*Client]bool
	maxClients int
	register   chan *Client
	unregister chan *Client
	shutdown   chan struct{} // signals Run to begin graceful drain
	done       chan struct{} // closed when Run has finished draining
	count      atomic.Int64
	log        *logrus.Logger
}

// NewHub creates a Hub that accepts at most maxClients connections.
func NewHub(log *logrus.Logger, maxClients int) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		maxClients: maxClients,
		register:   make(chan *Client, registerBuffer),
		unregister: make(chan *Client, registerBuffer),
		shutdown:   make(chan struct{}),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run starts the hub event loop. It should be run as a goroutine.
// It exits when Shutdown is called or the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.drainClients()

			return
		case <-h.shutdown:
			h.drainClients()

			return

		case client := <-h.register:
			if len(h.clients) >= h.maxClients {
				h.log.WithField("client_id", client.ID).Warn("connection limit reached, dropping client")
				client.closeSend()

				continue
			}
			h.clients[client] = true
			h.updateCount()
			h.log.WithFields(logrus.Fields{
				"client_id": client.ID,
				"total":     len(h.clients),
			}).Info("client registered")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.closeSend()
			}
			h.updateCount()
			h.log.WithFields(logrus.Fields{
				"client_id": client.ID,
				"total":     len(h.clients),
			}).Info("client unregistered")
		}
	}
}

func (h *Hub) updateCount() {
	h.count.Store(int64(len(h.clients)))
	metrics.WSConnections.Set(float64(len(h.clients)))
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	default:
		h.log.Warn("register channel full, dropping client")
		c.closeSend()
	}
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	default:
		// Run loop already exited; client cleanup happened in Run shutdown.
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// Shutdown sends a shutdown frame to every connected client, waits for
// their write pumps to flush, then closes all connections. It blocks until
// drain is complete or the timeout expires.
func (h *Hub) Shutdown() {
	close(h.shutdown)
	<-h.done
}

// drainClients sends a shutdown frame to every client and waits for buffers to flush.
func (h *Hub) drainClients() {
	if len(h.clients) == 0 {
		return
	}

	h.log.WithField("clients", len(h.clients)).Info("draining WebSocket clients")

	for client := range h.clients {
		client.enqueue(shutdownFrame) //nolint:errcheck // closed or full clients are dropped below
	}

	deadline := time.After(drainTimeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

drain:
	for !h.flushed() {
		select {
		case <-deadline:
			h.log.Warn("WebSocket drain timeout, closing remaining clients")

			break drain
		case <-ticker.C:
		}
	}

	for client := range h.clients {
		client.closeSend()
		delete(h.clients, client)
	}

	h.updateCount()
}

func (h *Hub) flushed() bool {
	for client := range h.clients {
		if client.pending() > 0 {
			return false
		}
	}

	return true
}

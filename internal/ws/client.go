package ws

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/HenrikBaltazar/linked-list-graph/internal/command"
	"github.com/HenrikBaltazar/linked-list-graph/internal/httputil"
)

const (
	writeTimeout     = 10 * time.Second
	wsReadLimit      = 4096
	clientSendBuffer = 64
	pingInterval     = 30 * time.Second
	pingTimeout      = 10 * time.Second
	maxMissedPongs   = int32(2)
)

// Invoker runs a named command. *command.Registry satisfies it.
type Invoker interface {
	Invoke(ctx context.Context, name string) (any, error)
}

// Client wraps a single WebSocket connection managed by the Hub.
type Client struct {
	ID      string
	hub     *Hub
	conn    *websocket.Conn
	invoker Invoker
	log     *logrus.Logger

	mu     sync.Mutex // guards send against close
	send   chan []byte
	closed bool
}

// NewClient creates a new Client for the given WebSocket connection.
func NewClient(hub *Hub, conn *websocket.Conn, invoker Invoker) *Client {
	return &Client{
		ID:      uuid.NewString(),
		hub:     hub,
		conn:    conn,
		invoker: invoker,
		log:     hub.log,
		send:    make(chan []byte, clientSendBuffer),
	}
}

// closeSend closes the send channel exactly once.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

var (
	errClientClosed  = errors.New("ws: client closed")
	errSendQueueFull = errors.New("ws: send buffer full")
)

// enqueue queues msg for the write pump.
func (c *Client) enqueue(msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errClientClosed
	}

	select {
	case c.send <- msg:
		return nil
	default:
		return errSendQueueFull
	}
}

func (c *Client) pending() int {
	return len(c.send)
}

// ReadPump reads invoke requests until the connection closes.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.CloseNow() //nolint:errcheck // best-effort close on teardown
	}()

	c.conn.SetReadLimit(wsReadLimit)

	for {
		_, msgBytes, err := c.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != -1 {
				c.log.WithFields(logrus.Fields{
					"client_id": c.ID,
					"status":    websocket.CloseStatus(err),
				}).Debug("client disconnected")
			}

			return
		}

		switch err := c.enqueue(c.handleMessage(ctx, msgBytes)); {
		case errors.Is(err, errClientClosed):
			// Dropped by the hub (connection cap or shutdown).
			c.log.WithField("client_id", c.ID).Debug("client closed, dropping response")

			return
		case err != nil:
			c.log.WithField("client_id", c.ID).Warn("send buffer full, dropping response")
		}
	}
}

// handleMessage dispatches one request and returns the encoded response.
func (c *Client) handleMessage(ctx context.Context, msgBytes []byte) []byte {
	var req Request
	if err := json.Unmarshal(msgBytes, &req); err != nil || req.Cmd == "" {
		return encodeResponse(Response{
			ID:    req.ID,
			Error: &httputil.ErrorBody{Code: httputil.CodeInvalidRequest, Message: "expected {\"id\", \"cmd\"}"},
		})
	}

	result, err := c.invoker.Invoke(ctx, req.Cmd)
	if err != nil {
		code := command.ErrorCode(err)
		msg := "command failed"
		if code == command.CodeUnknownCommand {
			msg = "unknown command: " + req.Cmd
		}

		return encodeResponse(Response{
			ID:    req.ID,
			Error: &httputil.ErrorBody{Code: code, Message: msg},
		})
	}

	data, err := json.Marshal(result)
	if err != nil {
		c.log.WithError(err).WithField("command", req.Cmd).Error("encoding command result")

		return encodeResponse(Response{
			ID:    req.ID,
			Error: &httputil.ErrorBody{Code: command.CodeInternalError, Message: "command failed"},
		})
	}

	return encodeResponse(Response{ID: req.ID, OK: true, Data: data})
}

func encodeResponse(resp Response) []byte {
	// Response holds only strings and raw JSON; Marshal cannot fail.
	data, _ := json.Marshal(resp) //nolint:errchkjson

	return data
}

// sendPing sends a WebSocket ping and tracks missed pongs.
// Returns true if the connection should be closed.
func (c *Client) sendPing(ctx context.Context, missedPongs *atomic.Int32) bool {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := c.conn.Ping(pingCtx)
	cancel()

	if err != nil {
		if missedPongs.Add(1) >= maxMissedPongs {
			c.log.WithField("client_id", c.ID).Debug("closing: consecutive missed pongs")

			return true
		}

		return false
	}

	missedPongs.Store(0)

	return false
}

// WritePump writes queued messages to the connection and keeps it alive
// with pings. It returns when the send channel is closed.
func (c *Client) WritePump(ctx context.Context) {
	defer c.conn.CloseNow() //nolint:errcheck // best-effort close on teardown

	pingTicker := time.NewTicker(pingInterval)
	defer pingTicker.Stop()

	var missedPongs atomic.Int32

	for {
		select {
		case <-ctx.Done():
			return
		case <-pingTicker.C:
			if c.sendPing(ctx, &missedPongs) {
				return
			}
		case msg, ok := <-c.send:
			if !ok {
				c.conn.Close(websocket.StatusGoingAway, "closing") //nolint:errcheck // best-effort

				return
			}

			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := c.conn.Write(writeCtx, websocket.MessageText, msg)
			cancel()

			if err != nil {
				c.log.WithError(err).Debug("write failed")

				return
			}
		}
	}
}

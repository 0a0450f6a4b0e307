package ws

import (
	"encoding/json"

	"github.com/HenrikBaltazar/linked-list-graph/internal/httputil"
)

// Request asks the backend to run a named command. ID is opaque to the
// server and echoed back so the front-end can match responses.
type Request struct {
	ID  string `json:"id"`
	Cmd string `json:"cmd"`
}

// Response answers exactly one Request.
type Response struct {
	ID    string              `json:"id"`
	OK    bool                `json:"ok"`
	Data  json.RawMessage     `json:"data,omitempty"`
	Error *httputil.ErrorBody `json:"error,omitempty"`
}

// shutdownFrame is sent to every client when the hub drains.
var shutdownFrame = []byte(`{"type":"shutdown","message":"server shutting down"}`)

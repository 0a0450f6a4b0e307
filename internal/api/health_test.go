package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/HenrikBaltazar/linked-list-graph/internal/api"
)

type fixedCounter int

func (f fixedCounter) ClientCount() int { return int(f) }

func TestLiveness_ReturnsOK(t *testing.T) {
	t.Parallel()

	h := api.NewHealthHandler(newRegistry(), fixedCounter(2), "test-v1")

	r := gin.New()
	r.GET("/health", h.Liveness)

	w := doRequest(r, http.MethodGet, "/health", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Status    string   `json:"status"`
		Version   string   `json:"version"`
		Commands  []string `json:"commands"`
		WSClients int      `json:"ws_clients"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if body.Status != "ok" {
		t.Errorf("expected status 'ok', got %v", body.Status)
	}

	if body.Version != "test-v1" {
		t.Errorf("expected version 'test-v1', got %v", body.Version)
	}

	if len(body.Commands) != 1 || body.Commands[0] != "get_graph" {
		t.Errorf("expected [get_graph], got %v", body.Commands)
	}

	if body.WSClients != 2 {
		t.Errorf("expected 2 ws clients, got %d", body.WSClients)
	}
}

func TestLiveness_NilCounter(t *testing.T) {
	t.Parallel()

	h := api.NewHealthHandler(newRegistry(), nil, "test-v1")

	r := gin.New()
	r.GET("/health", h.Liveness)

	if w := doRequest(r, http.MethodGet, "/health", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

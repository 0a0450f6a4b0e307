package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HenrikBaltazar/linked-list-graph/internal/config"
	"github.com/HenrikBaltazar/linked-list-graph/internal/ws"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger(&config.Config{LogLevel: "debug", LogFormat: "json"})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	log, err = newLogger(&config.Config{LogLevel: "warn", LogFormat: "text"})
	require.NoError(t, err)
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	_, err = newLogger(&config.Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestNewServer_ServesGraph(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, key := range []string{"PORT", "LISTEN_HOST", "CORS_ORIGINS", "LOG_LEVEL", "LOG_FORMAT", "WS_MAX_CLIENTS"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	hub := ws.NewHub(log, cfg.WSMaxClients)
	go hub.Run(ctx)

	srv, err := newServer(ctx, cfg, log, hub)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7420", srv.Addr)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoke/get_graph", nil)
	req.Header.Set("Origin", "tauri://localhost")
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tauri://localhost", w.Header().Get("Access-Control-Allow-Origin"))

	var body struct {
		Adj map[string][]int `json:"adj"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string][]int{
		"0": {1, 4},
		"1": {0, 2, 3},
		"2": {1, 3},
		"3": {1, 2},
		"4": {0, 1, 3},
	}, body.Adj)
}

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/HenrikBaltazar/linked-list-graph/internal/middleware"
	"github.com/HenrikBaltazar/linked-list-graph/internal/ws"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log              *logrus.Logger
	Registry         CommandRegistry
	Hub              *ws.Hub
	CORSOrigins      []string
	WSOriginPatterns []string // host patterns accepted for WebSocket upgrades
	Version          string
}

// maxBodySize caps request bodies; commands take no arguments.
const maxBodySize = 4 << 10

// originSchemas are accepted in CORS origins on top of http and https. The
// desktop webview loads the front-end from tauri://localhost.
var originSchemas = []string{"tauri"}

func setupMiddleware(r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(middleware.Logger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.PrometheusMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
		CustomSchemas:    originSchemas,
	}))
	// After CORS so a rejected body still carries the allow-origin header.
	r.Use(middleware.MaxBodySize(maxBodySize))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	var clients ClientCounter
	if deps.Hub != nil {
		clients = deps.Hub
	}

	health := NewHealthHandler(deps.Registry, clients, deps.Version)
	commands := NewCommandHandler(deps.Registry, deps.Log)

	api.GET("/health", health.Liveness)

	api.GET("/commands", commands.List)
	api.POST("/invoke/:command", commands.Invoke)
	api.GET("/graph", commands.Graph)

	if deps.Hub != nil {
		api.GET("/ws", wsHandler(ctx, deps.Log, deps.Hub, deps.Registry, deps.WSOriginPatterns))
	}
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "no route for "+c.Request.URL.Path)
	})

	return r
}

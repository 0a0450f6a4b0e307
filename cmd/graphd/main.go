// Command graphd serves the graph command table over loopback HTTP and
// WebSocket.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/HenrikBaltazar/linked-list-graph/internal/api"
	"github.com/HenrikBaltazar/linked-list-graph/internal/command"
	"github.com/HenrikBaltazar/linked-list-graph/internal/config"
	"github.com/HenrikBaltazar/linked-list-graph/internal/service"
	"github.com/HenrikBaltazar/linked-list-graph/internal/ws"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "graphd: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "graphd: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("graphd exited")
	}

	log.Info("graphd stopped")
}

func newLogger(cfg *config.Config) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log, nil
}

// newServer wires the command table, hub and router into an http.Server.
func newServer(ctx context.Context, cfg *config.Config, log *logrus.Logger, hub *ws.Hub) (*http.Server, error) {
	reg := command.NewRegistry(log)
	if err := command.Install(reg, service.NewGraphService(log)); err != nil {
		return nil, fmt.Errorf("installing commands: %w", err)
	}

	router := api.NewRouter(ctx, &api.RouterDeps{
		Log:              log,
		Registry:         reg,
		Hub:              hub,
		CORSOrigins:      cfg.CORSOrigins,
		WSOriginPatterns: cfg.OriginHosts(),
		Version:          config.Version,
	})

	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}, nil
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	hub := ws.NewHub(log, cfg.WSMaxClients)

	srv, err := newServer(ctx, cfg, log, hub)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})

	g.Go(func() error {
		log.WithFields(logrus.Fields{
			"addr":    srv.Addr,
			"version": config.Version,
		}).Info("graphd listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

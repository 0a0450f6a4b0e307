// Package command maps command names to handlers. The table is populated
// once at startup and read concurrently afterwards.
package command

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/HenrikBaltazar/linked-list-graph/internal/metrics"
)

// Sentinel errors for registration and dispatch.
var (
	ErrInvalidCommand   = errors.New("command: invalid registration")
	ErrDuplicateCommand = errors.New("command: already registered")
	ErrUnknownCommand   = errors.New("command: unknown command")
	ErrInvocationFailed = errors.New("command: invocation failed")
)

// Handler runs a command. Commands take no arguments; the result must be
// JSON-encodable.
type Handler func(ctx context.Context) (any, error)

// Registry is a lookup table from command name to handler.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	log      *logrus.Logger
}

// NewRegistry creates an empty Registry.
func NewRegistry(log *logrus.Logger) *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		log:      log,
	}
}

// Register adds h under name.
func (r *Registry) Register(name string, h Handler) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidCommand)
	}

	if h == nil {
		return fmt.Errorf("%w: nil handler for %q", ErrInvalidCommand, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCommand, name)
	}

	r.handlers[name] = h

	return nil
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Invoke runs the handler registered under name. Handler failures are
// logged and returned wrapping ErrInvocationFailed; callers report them to
// the front-end as opaque failures.
func (r *Registry) Invoke(ctx context.Context, name string) (any, error) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()

	if !ok {
		metrics.CommandInvocations.WithLabelValues("unknown", "unknown").Inc()

		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	start := time.Now()
	result, err := h(ctx)
	elapsed := time.Since(start)

	metrics.CommandDuration.WithLabelValues(name).Observe(elapsed.Seconds())

	fields := logrus.Fields{
		"command":  name,
		"duration": elapsed.String(),
	}

	if err != nil {
		metrics.CommandInvocations.WithLabelValues(name, "error").Inc()
		r.log.WithFields(fields).WithError(err).Error("command failed")

		return nil, fmt.Errorf("%w: %s: %w", ErrInvocationFailed, name, err)
	}

	metrics.CommandInvocations.WithLabelValues(name, "ok").Inc()
	r.log.WithFields(fields).Debug("command invoked")

	return result, nil
}

// Front-end error codes for dispatch failures.
const (
	CodeUnknownCommand = "unknown_command"
	CodeInternalError  = "internal_error"
)

// ErrorCode maps a dispatch error to the code reported to the front-end.
func ErrorCode(err error) string {
	if errors.Is(err, ErrUnknownCommand) {
		return CodeUnknownCommand
	}

	return CodeInternalError
}

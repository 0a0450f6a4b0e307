package api

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/HenrikBaltazar/linked-list-graph/internal/command"
)

// maxCommandNameLen bounds the :command path parameter.
const maxCommandNameLen = 64

// CommandHandler exposes the command table over HTTP.
type CommandHandler struct {
	registry CommandRegistry
	log      *logrus.Logger
}

// NewCommandHandler creates a CommandHandler with the given registry and logger.
func NewCommandHandler(registry CommandRegistry, log *logrus.Logger) *CommandHandler {
	return &CommandHandler{registry: registry, log: log}
}

// List handles GET /api/v1/commands.
func (h *CommandHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"commands": h.registry.Names()})
}

// Invoke handles POST /api/v1/invoke/:command. Commands take no arguments,
// so the body must be empty, {} or null.
func (h *CommandHandler) Invoke(c *gin.Context) {
	name := c.Param("command")
	if name == "" || len(name) > maxCommandNameLen {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid command name")

		return
	}

	body, err := c.GetRawData()
	if tooLarge := new(http.MaxBytesError); errors.As(err, &tooLarge) {
		respondError(c, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "request body too large")

		return
	}

	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "unreadable request body")

		return
	}

	if !isEmptyArgs(body) {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "command "+name+" takes no arguments")

		return
	}

	h.dispatch(c, name)
}

// Graph handles GET /api/v1/graph, a shortcut for invoking get_graph.
func (h *CommandHandler) Graph(c *gin.Context) {
	h.dispatch(c, command.GetGraph)
}

func (h *CommandHandler) dispatch(c *gin.Context, name string) {
	result, err := h.registry.Invoke(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, command.ErrUnknownCommand) {
			respondError(c, http.StatusNotFound, ErrCodeUnknownCommand, "unknown command: "+name)

			return
		}

		h.log.WithError(err).WithField("command", name).Error("invoking command")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, result)
}

func isEmptyArgs(body []byte) bool {
	trimmed := bytes.TrimSpace(body)

	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("{}")) || bytes.Equal(trimmed, []byte("null"))
}

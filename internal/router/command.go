// Package router exposes the interpreter over HTTP: one endpoint to run
// a command, one to ask for a completion. Both answer plain text so any
// front-end can render them directly.
package router

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quicktix/quicktix/internal/interpreter"
	"github.com/quicktix/quicktix/internal/suggest"
)

type CommandRouter struct {
	e           *echo.Echo
	interpreter *interpreter.Interpreter
	suggester   suggest.Suggester
}

type CommandRouterOption func(*CommandRouter)

// WithSuggester enables the /suggest endpoint.
func WithSuggester(s suggest.Suggester) CommandRouterOption {
	return func(r *CommandRouter) {
		r.suggester = s
	}
}

func NewCommandRouter(e *echo.Echo, i *interpreter.Interpreter, opts ...CommandRouterOption) *CommandRouter {
	r := &CommandRouter{
		e:           e,
		interpreter: i,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CommandRouter) Bind() {
	r.e.POST("/run", r.runHandler)
	r.e.GET("/suggest/:partial", r.suggestHandler)
}

type runRequest struct {
	Command string `json:"command"`
}

func (r *CommandRouter) runHandler(c echo.Context) error {
	var req runRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}
	if req.Command == "" {
		return c.String(http.StatusBadRequest, "command is required")
	}

	result := r.interpreter.Run(c.Request().Context(), req.Command)
	return c.String(http.StatusOK, result)
}

func (r *CommandRouter) suggestHandler(c echo.Context) error {
	if r.suggester == nil {
		return c.String(http.StatusOK, "")
	}

	partial := c.Param("partial")
	suggestion, err := r.suggester.Suggest(c.Request().Context(), partial)
	if err != nil {
		// Suggestions are best-effort; an empty answer beats a 5xx.
		slog.Debug("suggestion failed", "error", err, "partial", partial)
		return c.String(http.StatusOK, "")
	}
	return c.String(http.StatusOK, suggestion)
}

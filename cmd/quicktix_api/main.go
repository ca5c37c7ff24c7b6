// Package main QuickTix API
// A text-command front end for the QuickTix ticket booking system:
// POST a command line, get the interpreter's answer back as plain text.
package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/quicktix/quicktix/internal/interpreter"
	"github.com/quicktix/quicktix/internal/router"
	"github.com/quicktix/quicktix/internal/server"
	"github.com/quicktix/quicktix/internal/storage/factory"
	"github.com/quicktix/quicktix/internal/suggest"
	pkgserver "github.com/quicktix/quicktix/pkg/server"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelInfo)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	healthChecker := pkgserver.NewOkHealthChecker()

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "QuickTix API is running")
	})

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	repo, err := factory.NewRepository(s.Context(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create repository", "error", err)
		os.Exit(1)
		return
	}

	interp := interpreter.New(repo)

	var routerOpts []router.CommandRouterOption
	suggester, err := suggest.NewFromConfig(&cfg.SuggestConfig)
	if err != nil {
		slog.Error("Failed to create suggester", "error", err)
		os.Exit(1)
		return
	}
	routerOpts = append(routerOpts, router.WithSuggester(suggester))

	commandRouter := router.NewCommandRouter(s.Echo, interp, routerOpts...)
	commandRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

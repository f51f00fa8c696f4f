package main

//
//  @title           marketpulse API
//  @version         1.0
//  @description     Market breadth and treasury yield curve dashboard service.
//  @termsOfService  https://github.com/guttosm/marketpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/marketpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        breadth
//  @tag.description Market breadth history, snapshot, and constituent roster
//
//  @tag.name        curve
//  @tag.description Treasury yield curve observations
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/marketpulse/config"
	_ "github.com/guttosm/marketpulse/docs" // swagger docs
	"github.com/guttosm/marketpulse/internal/app"
	"github.com/guttosm/marketpulse/internal/logger"
	"github.com/guttosm/marketpulse/internal/scheduler"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// awaitSignal blocks until SIGINT or SIGTERM arrives.
func awaitSignal() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
}

// main is the entry point of the marketpulse application.
//
// Modes (selected via --mode flag):
//   - api:      Starts the REST API exposing breadth and yield curve data.
//   - update:   Runs one refresh of the treasury and breadth datasets, then exits.
//   - schedule: Runs refreshes on the configured cron schedule until interrupted.
//
// Flags:
//   - --mode: Execution mode ("api", "update", or "schedule"). Default: "api".
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api, update, or schedule")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	a, cleanup, err := app.InitializeApp()
	if err != nil {
		logger.L().Fatal().Err(err).Msg("app init error")
	}

	switch *mode {
	case "api":
		logger.L().Info().Msg("starting API server")

		server := startServer(a.Router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "update":
		logger.L().Info().Msg("running one-off refresh")

		scheduler.New(ctx, a.Breadth, a.Updater).RunNow()
		cleanup()
		logger.L().Info().Msg("refresh completed")

	case "schedule":
		spec := config.AppConfig.Refresh.CronSpec
		logger.L().Info().Str("cron", spec).Msg("starting scheduled refresh loop")

		sched := scheduler.New(ctx, a.Breadth, a.Updater)
		if err := sched.Register(spec); err != nil {
			logger.L().Fatal().Err(err).Msg("invalid cron expression")
		}
		sched.Start()

		awaitSignal()
		sched.Stop()
		cleanup()
		logger.L().Info().Msg("scheduler exited gracefully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PixelCraftAgency/pixelcraft-go/internal/application/container"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/caching/cleanup"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/caching/manager"
	contentstore "github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/content"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/database"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/infrastructure/observability/logging"
	"github.com/PixelCraftAgency/pixelcraft-go/internal/presentation/http/server"
	"github.com/PixelCraftAgency/pixelcraft-go/pkg/config"
)

// Initialize performs the complete startup sequence and blocks until
// the process receives a shutdown signal.
func Initialize() error {
	setupGinMode()

	start := time.Now().UTC()

	ctx, cancelBackgroundTasks := context.WithCancel(context.Background())
	defer cancelBackgroundTasks()

	log.Println("\033[32m" + `

  ▄▄▄▄  ▄ ▄  ▄ ▄▄▄▄ ▄    ▄▄▄▄ ▄▄▄▄  ▄▄▄ ▄▄▄▄▄ ▄▄▄▄▄
  █   █ █  ▀▄▀  █▄▄  █    █    █   █ █  █  █     █
  █▀▀▀  █ ▄▀ ▀▄ █▄▄▄ █▄▄▄ █▄▄▄ █ ▀▄  █▄▄█  █     █
` + "\033[97m" + `
  made by PixelCraft Agency
` + "\033[0m")

	// Step 1: Structured logging
	log.Println("Initializing logging...")
	logger, err := logging.NewChanneledLogger(logging.DefaultLoggerConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logger.Close()

	logger.LogStartupPhase("logging", time.Since(start), true)

	// Step 2: Content store
	logger.Startup().Info("Loading content document", "path", config.ContentPath)
	startContentTime := time.Now()

	store, err := contentstore.NewStore(config.ContentPath)
	if err != nil {
		logger.LogStartupPhase("content", time.Since(startContentTime), false)
		return fmt.Errorf("failed to load content document: %w", err)
	}
	logger.LogStartupPhase("content", time.Since(startContentTime), true)

	// Step 3: Database and schema
	logger.Startup().Info("Connecting to lead database...")
	startDBTime := time.Now()

	db, err := database.New()
	if err != nil {
		logger.LogStartupPhase("database", time.Since(startDBTime), false)
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := database.NewTableCreator().CreateSchema(db.Conn); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	logger.LogStartupPhase("database", time.Since(startDBTime), true)

	// Step 4: Widget cache
	logger.Startup().Info("Initializing widget cache...")
	cacheManager := manager.NewManager(logger)

	// Step 5: Dependency injection container
	logger.Startup().Info("Initializing dependency injection container...")
	appContainer, err := container.NewContainer(logger, store, db, cacheManager)
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}
	logger.Startup().Info("Dependency injection container created with singleton services")

	// Step 6: Background cleanup worker
	logger.Startup().Info("Starting background cleanup worker...")
	cleanupWorker := cleanup.NewWorker(cacheManager, cleanup.NewConfig(), logger)
	go cleanupWorker.Start(ctx)

	// Step 7: HTTP server
	logger.Startup().Info("Starting HTTP server...")
	port := config.Port
	httpServer := server.New(port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", port)

	// Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()
	cancelBackgroundTasks()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Shutdown().Info("Stopping HTTP server...")
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

// setupGinMode configures the gin runtime mode from the environment
func setupGinMode() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
}

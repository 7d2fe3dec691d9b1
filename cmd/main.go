package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"

	"dm-relay/auth"
	"dm-relay/internal"
	"dm-relay/observability"
	"dm-relay/repositories"
	"dm-relay/runtime"
	"dm-relay/runtime/workers"
	"dm-relay/services"
	"dm-relay/transport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the server and background workers.
func run() error {
	// 1. Configuration & Logger
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	if err := os.MkdirAll(config.UploadDir, 0o755); err != nil {
		return fmt.Errorf("upload directory: %w", err)
	}

	// 2. Media index (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Supervision & relay engine
	sup := workers.NewSupervisor(log, config.RestartInterval)
	registry := runtime.NewRegistry(config.DefaultPicture)
	monitor := observability.NewRelayMonitor()
	relay := runtime.NewRelay(log, sup, registry, monitor,
		config.BufferSize, config.SinkTimeout, config.SessionTTL)
	sup.Add(workers.NewHeartbeatWorker(log, registry, monitor, config.HeartbeatInterval))

	// 4. Services
	tokens := auth.NewTokenIssuer([]byte(config.MediaTokenSecret), config.MediaTokenDuration)
	relayService := services.NewRelayService(relay, tokens, log)
	mediaRepository := repositories.NewMediaRepository(db, log)
	mediaService := services.NewMediaService(mediaRepository, relay, monitor, log,
		config.UploadDir, config.PublicBaseURL)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Start the engine
	if err = relay.Start(ctx); err != nil {
		return fmt.Errorf("relay failed to start: %w", err)
	}

	// 7. Debug surface
	internal.StartDebugServer(mediaRepository, config.DebugPort, "/inspect", func() map[string]any {
		stats := monitor.Snapshot()
		return map[string]any{
			"sessions":         len(relay.Roster()),
			"logins":           stats.Logins,
			"reconnects":       stats.Reconnects,
			"messages_relayed": stats.MessagesRelayed,
			"messages_dropped": stats.MessagesDropped,
			"uploads":          stats.Uploads,
			"started_at":       monitor.StartedAt().Format(time.RFC822),
		}
	}, log)

	// 8. Public server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	server := transport.NewServer(log, relayService, mediaService, tokens,
		config.ConnectionBufferSize, config.UploadDir)

	// Use an error channel to capture Start() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting relay server", "address", address, "at", time.Now().UTC())
		if err := server.Start(address); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	// 9. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 10. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("Server shutdown incomplete", "error", err)
	}
	relay.Stop()
	log.Info("Program stopped cleanly")

	return nil
}

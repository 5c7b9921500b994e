// ABOUTME: Serve command runs the assistant HTTP API
// ABOUTME: Same wiring as cmd/server, packaged as a CLI subcommand
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/avikd/folio-assistant/internal/api"
)

var serveAddr string

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the assistant HTTP API",
		Long: `Run the assistant HTTP API.

Exposes POST /ask for the site widget and GET /healthz for liveness.
The knowledge backend (OpenAI or Hugging Face) is selected by
ASSIST_GENERATOR; resume mode is enabled when RESUME_PATH is set.`,
		RunE: runServe,
		Example: `  # Serve on the configured address (default :8080)
  assistant serve

  # Override the listen address
  assistant serve --addr :9090`,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides ASSIST_ADDR)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	server := api.NewServer(cfg.Addr, buildSitePipeline(cfg), buildResumeEngine(cfg))

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, gracefully shutting down...")
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Stop(shutdownCtx); err != nil {
			log.Printf("Warning: error during shutdown: %v", err)
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}

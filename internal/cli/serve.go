package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ppiankov/identia/internal/cache"
	"github.com/ppiankov/identia/internal/extract/profiles"
	"github.com/ppiankov/identia/internal/ocr"
	"github.com/ppiankov/identia/internal/pipeline"
	"github.com/ppiankov/identia/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the extraction HTTP API",
	Long: `Serve exposes one extraction endpoint per document family:

  POST /extract_aadhaar   multipart PDF upload, "file" field
  POST /extract_pan       multipart PDF upload, "file" field
  GET  /healthz           liveness probe
  GET  /metrics           Prometheus metrics

Uploads are held in memory only. When caching is enabled, recognized text
is kept for a short TTL keyed by content hash so re-uploads of the same
document skip OCR.

Example:
  identia serve
  identia serve --addr :9090`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	log := newLogger()
	extractor := pipeline.New(profiles.NewRegistry())
	source := ocr.NewReader(cfg.OCR)

	opts := []server.Option{server.WithLanguages(cfg.OCR)}
	if cfg.Cache.Enabled {
		mem := cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
		opts = append(opts, server.WithCache(mem, cfg.Cache.TTL))
	}

	srv := server.New(cfg.Server, log, extractor, source, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/identia/internal/model"
	"github.com/ppiankov/identia/internal/pipeline"
	"github.com/ppiankov/identia/internal/worker"
)

var (
	batchType    string
	batchWorkers int
	batchOutDir  string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Extract fields from every PDF in a directory",
	Long: `Batch processes a directory of scanned documents concurrently:
- Collect every PDF in the directory
- Run OCR and extraction in parallel with a configurable worker count
- Write one JSON record per document to the output directory
- Print a summary of successes and failures

Example:
  identia batch ./scans --type aadhaar
  identia batch ./scans --type pan --workers 8 --output-dir ./records`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchType, "type", "aadhaar", "document type (aadhaar, pan)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "number of concurrent workers (default from config)")
	batchCmd.Flags().StringVar(&batchOutDir, "output-dir", "./identia-records", "output directory for JSON records")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "total timeout for batch processing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	docType, err := model.ParseDocumentType(batchType)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	workers := cfg.Batch.Workers
	if batchWorkers > 0 {
		workers = batchWorkers
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Input dir:   %s\n", dir)
	fmt.Fprintf(os.Stderr, "Type:        %s\n", docType)
	fmt.Fprintf(os.Stderr, "Workers:     %d\n", workers)
	fmt.Fprintf(os.Stderr, "Output dir:  %s\n\n", batchOutDir)

	processor := worker.NewBatchProcessor(newFileRunner(cfg), workers)
	results, err := processor.ProcessDir(ctx, dir, docType)
	if err != nil {
		return err
	}

	succeeded, rejected, failed := 0, 0, 0
	for _, res := range results {
		name := strings.TrimSuffix(filepath.Base(res.Path), filepath.Ext(res.Path))
		switch {
		case res.Error == nil:
			succeeded++
			if err := writeRecord(filepath.Join(batchOutDir, name+".json"), res.Record); err != nil {
				return err
			}
		default:
			if _, ok := pipeline.AsExtractionError(res.Error); ok {
				rejected++
			} else {
				failed++
			}
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, res.Error)
		}
	}

	fmt.Fprintf(os.Stderr, "\nProcessed %d documents: %d extracted, %d rejected, %d failed\n",
		len(results), succeeded, rejected, failed)

	if failed > 0 {
		return fmt.Errorf("%d documents failed", failed)
	}
	return nil
}

func writeRecord(path string, rec *model.Record) error {
	data, err := json.MarshalIndent(map[string]any{
		"status": "success",
		"data":   rec.Fields,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

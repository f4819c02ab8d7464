package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/identia/internal/model"
	"github.com/ppiankov/identia/internal/pipeline"
)

var (
	extractType    string
	extractTimeout time.Duration
	extractRawOut  bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract fields from a single document",
	Long: `Extract runs OCR and the field heuristics against one document and
prints the resulting record as JSON.

PDF inputs are rasterized and recognized with Tesseract (requires a build
with -tags ocr). Plain .txt inputs are treated as already-recognized OCR
text and bypass Tesseract entirely.

Example:
  identia extract card.pdf --type aadhaar
  identia extract pan_dump.txt --type pan
  identia extract card.pdf --type aadhaar --raw`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&extractType, "type", "aadhaar", "document type (aadhaar, pan)")
	extractCmd.Flags().DurationVar(&extractTimeout, "timeout", 2*time.Minute, "overall extraction timeout")
	extractCmd.Flags().BoolVar(&extractRawOut, "raw", false, "include raw OCR text in the output")
}

func runExtract(cmd *cobra.Command, args []string) error {
	docType, err := model.ParseDocumentType(extractType)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), extractTimeout)
	defer cancel()

	runner := newFileRunner(cfg)
	rec, err := runner.ExtractFile(ctx, args[0], docType)
	if err != nil {
		if extErr, ok := pipeline.AsExtractionError(err); ok {
			return fmt.Errorf("%s", extErr.Message)
		}
		return err
	}

	out := map[string]any{"status": "success", "data": rec.Fields}
	if extractRawOut {
		out["raw_text"] = rec.RawText
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

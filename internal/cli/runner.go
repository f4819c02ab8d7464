package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/identia/internal/extract/profiles"
	"github.com/ppiankov/identia/internal/model"
	"github.com/ppiankov/identia/internal/ocr"
	"github.com/ppiankov/identia/internal/pipeline"
)

// fileRunner extracts fields from documents on the local filesystem. Plain
// .txt inputs bypass OCR, which keeps the extract and batch commands usable
// on builds without Tesseract and makes heuristics easy to exercise against
// saved OCR dumps.
type fileRunner struct {
	extractor *pipeline.Extractor
	source    ocr.TextSource
	ocrCfg    model.OCRConfig
}

func newFileRunner(cfg *model.Config) *fileRunner {
	return &fileRunner{
		extractor: pipeline.New(profiles.NewRegistry()),
		source:    ocr.NewReader(cfg.OCR),
		ocrCfg:    cfg.OCR,
	}
}

// languagesFor resolves the OCR language string for a document family,
// preferring the configured override over the profile default.
func (r *fileRunner) languagesFor(docType model.DocumentType) string {
	if l := r.ocrCfg.Languages(docType); l != "" {
		return l
	}
	return r.extractor.Languages(docType)
}

// ExtractFile reads one document file and runs the cascade for docType.
func (r *fileRunner) ExtractFile(ctx context.Context, path string, docType model.DocumentType) (*model.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var text string
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		text = string(data)
	} else {
		text, err = r.source.ExtractText(ctx, data, filepath.Base(path), r.languagesFor(docType))
		if err != nil {
			return nil, fmt.Errorf("ocr %s: %w", path, err)
		}
	}

	return r.extractor.Extract(text, docType)
}

package ocr

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ppiankov/identia/internal/model"
)

// ErrNotEnabled is returned when OCR support was not compiled in. Rebuild
// with -tags ocr (and a system Tesseract install) to enable recognition.
var ErrNotEnabled = errors.New("ocr support not enabled; rebuild with -tags ocr")

// TextSource converts an uploaded document into one OCR text string. An
// error here is an upstream fault, cleanly distinguished from text: callers
// never have to guess whether a string is real OCR output or a stringified
// failure.
type TextSource interface {
	ExtractText(ctx context.Context, data []byte, filename, languages string) (string, error)
}

// Reader is the production TextSource: PDFs are rasterized page by page and
// every page (or the image itself, for image uploads) goes through
// Tesseract. Page texts are joined with newlines, matching how downstream
// heuristics expect multi-page documents to read.
type Reader struct {
	cfg model.OCRConfig
}

// NewReader builds a Reader with the given OCR configuration.
func NewReader(cfg model.OCRConfig) *Reader {
	return &Reader{cfg: cfg}
}

// ExtractText implements TextSource.
func (r *Reader) ExtractText(ctx context.Context, data []byte, filename, languages string) (string, error) {
	var pages [][]byte
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		rendered, err := RasterizePDF(ctx, data, r.cfg.PdftoppmPath, r.cfg.DPI)
		if err != nil {
			return "", fmt.Errorf("rasterize pdf: %w", err)
		}
		pages = rendered
	} else {
		pages = [][]byte{data}
	}

	client, err := NewClient()
	if err != nil {
		return "", err
	}
	defer client.Close()

	if err := client.SetLanguages(languages); err != nil {
		return "", fmt.Errorf("set languages %q: %w", languages, err)
	}

	var b strings.Builder
	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := client.RecognizeImage(page)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i+1, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

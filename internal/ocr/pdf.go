package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// RasterizePDF renders each page of a PDF to a PNG image using poppler's
// pdftoppm. The document is streamed over stdin and pages are written to a
// private temp directory that is removed before returning, so uploads never
// persist on disk beyond the call.
func RasterizePDF(ctx context.Context, pdf []byte, pdftoppmPath string, dpi int) ([][]byte, error) {
	if pdftoppmPath == "" {
		pdftoppmPath = "pdftoppm"
	}
	if dpi <= 0 {
		dpi = 300
	}

	dir, err := os.MkdirTemp("", "identia-pdf-")
	if err != nil {
		return nil, fmt.Errorf("temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	prefix := filepath.Join(dir, "page")
	cmd := exec.CommandContext(ctx, pdftoppmPath, "-png", "-r", strconv.Itoa(dpi), "-", prefix)
	cmd.Stdin = bytes.NewReader(pdf)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("pdftoppm: %s", msg)
	}

	files, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no pages")
	}
	sort.Slice(files, func(i, j int) bool {
		return pageNumber(files[i]) < pageNumber(files[j])
	})

	pages := make([][]byte, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("read page: %w", err)
		}
		pages = append(pages, data)
	}
	return pages, nil
}

// pageNumber pulls the numeric suffix out of "page-7.png"; pdftoppm pads
// page numbers inconsistently across versions, so compare numerically.
func pageNumber(path string) int {
	base := strings.TrimSuffix(filepath.Base(path), ".png")
	idx := strings.LastIndexByte(base, '-')
	if idx < 0 {
		return 0
	}
	n, err := strconv.Atoi(base[idx+1:])
	if err != nil {
		return 0
	}
	return n
}

package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ppiankov/identia/internal/model"
)

// Extractor defines the interface for extracting fields from one document file
type Extractor interface {
	ExtractFile(ctx context.Context, path string, docType model.DocumentType) (*model.Record, error)
}

// ExtractJob represents a single-file extraction job
type ExtractJob struct {
	Path      string
	Type      model.DocumentType
	Extractor Extractor
}

// Execute executes the extraction job
func (j *ExtractJob) Execute(ctx context.Context) Result {
	record, err := j.Extractor.ExtractFile(ctx, j.Path, j.Type)
	return &ExtractResult{
		Path:   j.Path,
		Record: record,
		Error:  err,
	}
}

// ExtractResult represents the result of an extraction job
type ExtractResult struct {
	Path   string
	Record *model.Record
	Error  error
}

// GetError returns the error from the extraction result
func (r *ExtractResult) GetError() error {
	return r.Error
}

// BatchProcessor extracts fields from multiple documents concurrently
type BatchProcessor struct {
	extractor   Extractor
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(extractor Extractor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		extractor:   extractor,
		concurrency: concurrency,
	}
}

// ProcessFiles extracts fields from the given files concurrently
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string, docType model.DocumentType) []*ExtractResult {
	if len(paths) == 0 {
		return []*ExtractResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&ExtractJob{
			Path:      path,
			Type:      docType,
			Extractor: b.extractor,
		})
	}

	results := pool.Wait()

	extractResults := make([]*ExtractResult, len(results))
	for i, result := range results {
		extractResults[i] = result.(*ExtractResult)
	}

	return extractResults
}

// ProcessDir extracts fields from every PDF in a directory
func (b *BatchProcessor) ProcessDir(ctx context.Context, dir string, docType model.DocumentType) ([]*ExtractResult, error) {
	paths, err := CollectPDFs(dir)
	if err != nil {
		return nil, fmt.Errorf("collect PDFs: %w", err)
	}

	return b.ProcessFiles(ctx, paths, docType), nil
}

// CollectPDFs lists the PDF files in a directory, sorted by name
func CollectPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}

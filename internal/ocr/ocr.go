//go:build ocr

// Package ocr is the boundary to the OCR collaborator. It wraps the
// Tesseract engine via gosseract and rasterizes PDF uploads through
// poppler's pdftoppm. The extraction core never touches this package; it
// only ever sees the finished text string.
//
// OCR support needs cgo and a system Tesseract install, so it sits behind
// the "ocr" build tag:
//
//	go build -tags ocr
//
// Without the tag a stub is compiled in and every recognition attempt
// returns ErrNotEnabled.
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps a Tesseract session for recognition calls. Clients are not
// safe for concurrent use; create one per recognition job.
type Client struct {
	client *gosseract.Client
}

// NewClient creates an OCR client. Close it to release engine resources.
func NewClient() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguages selects the recognition languages as a "+"-separated string,
// e.g. "eng+guj".
func (c *Client) SetLanguages(langs string) error {
	if langs == "" {
		return nil
	}
	return c.client.SetLanguage(strings.Split(langs, "+")...)
}

// RecognizeImage performs OCR on one image (PNG, JPEG, TIFF) and returns
// the recognized text, trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return strings.TrimSpace(text), nil
}

//go:build !ocr

// Package ocr is the boundary to the OCR collaborator. This is the stub
// compiled in when the "ocr" build tag is absent: every recognition attempt
// returns ErrNotEnabled. Rebuild with
//
//	go build -tags ocr
//
// and a system Tesseract install to enable recognition.
package ocr

// Client is the stub OCR client.
type Client struct{}

// NewClient returns ErrNotEnabled; no recognition is possible in this build.
func NewClient() (*Client, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op on the stub client.
func (c *Client) Close() error { return nil }

// SetLanguages returns ErrNotEnabled.
func (c *Client) SetLanguages(langs string) error { return ErrNotEnabled }

// RecognizeImage returns ErrNotEnabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrNotEnabled
}

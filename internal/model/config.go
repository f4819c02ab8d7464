package model

import "time"

// Config holds all runtime configuration for identia.
//
// Values are layered: built-in defaults, then ~/.identia/config.yaml, then
// IDENTIA_* environment variables, then CLI flags.
type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	OCR    OCRConfig    `yaml:"ocr" mapstructure:"ocr"`
	Cache  CacheConfig  `yaml:"cache" mapstructure:"cache"`
	Batch  BatchConfig  `yaml:"batch" mapstructure:"batch"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string        `yaml:"addr" mapstructure:"addr"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" mapstructure:"max_upload_bytes"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`

	// Per-client request rate limiting. Zero rate disables limiting.
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
	RateBurst int     `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// OCRConfig configures the OCR collaborator.
type OCRConfig struct {
	// Languages passed to Tesseract per document family, "+"-separated.
	AadhaarLanguages string `yaml:"aadhaar_languages" mapstructure:"aadhaar_languages"`
	PANLanguages     string `yaml:"pan_languages" mapstructure:"pan_languages"`

	// PdftoppmPath locates the poppler rasterizer used for PDF pages.
	PdftoppmPath string `yaml:"pdftoppm_path" mapstructure:"pdftoppm_path"`
	DPI          int    `yaml:"dpi" mapstructure:"dpi"`
}

// Languages returns the configured Tesseract language string for a
// document family, or "" when none is configured.
func (c OCRConfig) Languages(docType DocumentType) string {
	switch docType {
	case DocumentAadhaar:
		return c.AadhaarLanguages
	case DocumentPAN:
		return c.PANLanguages
	}
	return ""
}

// CacheConfig bounds the in-memory OCR text cache. Uploaded documents are
// never written to disk; only recognized text is cached, keyed by content
// hash, for at most TTL.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// BatchConfig configures the batch command.
type BatchConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			MaxUploadBytes:  16 << 20,
			ShutdownTimeout: 10 * time.Second,
			RequestTimeout:  60 * time.Second,
			RateLimit:       5,
			RateBurst:       10,
		},
		OCR: OCRConfig{
			AadhaarLanguages: "eng+guj",
			PANLanguages:     "eng",
			PdftoppmPath:     "pdftoppm",
			DPI:              300,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             5 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		Batch: BatchConfig{
			Workers: 4,
		},
	}
}

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ppiankov/identia/internal/cache"
	"github.com/ppiankov/identia/internal/extract/profiles"
	"github.com/ppiankov/identia/internal/model"
	"github.com/ppiankov/identia/internal/pipeline"
)

const aadhaarText = `Government of India
RAHUL KUMAR SHARMA
DOB: 15/06/1990
Male
1234 5678 9012
Address: 123 MG Road, Koramangala, Bangalore, Karnataka 560034
`

const panText = `INCOME TAX DEPARTMENT
Permanent Account
ABCDE1234F
Name
RAHUL SHARMA
Father's Name
RAMESH SHARMA
Date of Birth
15/06/1990
`

// fakeSource returns canned OCR text without touching Tesseract.
type fakeSource struct {
	text      string
	err       error
	calls     int
	languages string
}

func (f *fakeSource) ExtractText(ctx context.Context, data []byte, filename, languages string) (string, error) {
	f.calls++
	f.languages = languages
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func testConfig() model.ServerConfig {
	cfg := model.DefaultConfig().Server
	cfg.RateLimit = 0 // no limiting in handler tests
	return cfg
}

func newTestServer(t *testing.T, source *fakeSource, opts ...Option) http.Handler {
	t.Helper()
	extractor := pipeline.New(profiles.NewRegistry())
	srv := New(testConfig(), zerolog.Nop(), extractor, source, opts...)
	return srv.Router()
}

func multipartPDF(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func postFile(t *testing.T, h http.Handler, path, field, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartPDF(t, field, filename, content)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&m); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return m
}

func TestExtractAadhaar_Success(t *testing.T) {
	h := newTestServer(t, &fakeSource{text: aadhaarText})

	rec := postFile(t, h, "/extract_aadhaar", "file", "card.pdf", []byte("%PDF-1.4"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["status"] != "success" {
		t.Errorf("expected status success, got %v", body["status"])
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("missing data object in %v", body)
	}
	if data["aadhaar_number"] != "1234 5678 9012" {
		t.Errorf("aadhaar_number = %v", data["aadhaar_number"])
	}
	if data["dob"] != "15/06/1990" {
		t.Errorf("dob = %v", data["dob"])
	}
	if data["gender"] != "MALE" {
		t.Errorf("gender = %v", data["gender"])
	}
	if body["raw_text"] != aadhaarText {
		t.Error("raw_text should echo the OCR output")
	}
}

func TestExtractPAN_Success(t *testing.T) {
	h := newTestServer(t, &fakeSource{text: panText})

	rec := postFile(t, h, "/extract_pan", "file", "pan.pdf", []byte("%PDF-1.4"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data, ok := decodeBody(t, rec)["data"].(map[string]any)
	if !ok {
		t.Fatal("missing data object")
	}
	if data["pan_number"] != "ABCDE1234F" {
		t.Errorf("pan_number = %v", data["pan_number"])
	}
	if data["name"] != "Rahul Sharma" {
		t.Errorf("name = %v", data["name"])
	}
	if data["father_name"] != "Ramesh Sharma" {
		t.Errorf("father_name = %v", data["father_name"])
	}
	if data["dob"] != "15/06/1990" {
		t.Errorf("dob = %v", data["dob"])
	}
}

func TestExtract_MandatoryFieldMissing(t *testing.T) {
	h := newTestServer(t, &fakeSource{text: "some unrelated scanned letter"})

	rec := postFile(t, h, "/extract_aadhaar", "file", "letter.pdf", []byte("%PDF-1.4"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["status"] != "error" {
		t.Errorf("expected status error, got %v", body["status"])
	}
	msg, _ := body["message"].(string)
	if !strings.Contains(msg, "Aadhaar number") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestExtract_NoFilePart(t *testing.T) {
	h := newTestServer(t, &fakeSource{text: aadhaarText})

	rec := postFile(t, h, "/extract_aadhaar", "document", "card.pdf", []byte("%PDF-1.4"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if decodeBody(t, rec)["error"] != "No file part" {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestExtract_EmptyFilename(t *testing.T) {
	h := newTestServer(t, &fakeSource{text: aadhaarText})

	// CreateFormFile would reject an empty filename, so build the part by hand.
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="file"; filename=""`},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("%PDF-1.4")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/extract_aadhaar", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if decodeBody(t, rec)["error"] != "No selected file" {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestExtract_NonPDFRejected(t *testing.T) {
	h := newTestServer(t, &fakeSource{text: aadhaarText})

	rec := postFile(t, h, "/extract_aadhaar", "file", "card.png", []byte("fake png"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if decodeBody(t, rec)["error"] != "Only PDF files are allowed" {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestExtract_OCRFailure(t *testing.T) {
	h := newTestServer(t, &fakeSource{err: errors.New("tesseract exploded")})

	rec := postFile(t, h, "/extract_pan", "file", "pan.pdf", []byte("%PDF-1.4"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	errMsg, _ := decodeBody(t, rec)["error"].(string)
	if !strings.Contains(errMsg, "tesseract exploded") {
		t.Errorf("unexpected error %q", errMsg)
	}
}

func TestExtract_UploadTooLarge(t *testing.T) {
	source := &fakeSource{text: aadhaarText}
	extractor := pipeline.New(profiles.NewRegistry())
	cfg := testConfig()
	cfg.MaxUploadBytes = 64
	srv := New(cfg, zerolog.Nop(), extractor, source)

	rec := postFile(t, srv.Router(), "/extract_aadhaar", "file", "card.pdf", bytes.Repeat([]byte("x"), 1024))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
	if source.calls != 0 {
		t.Error("oversized upload must not reach OCR")
	}
}

func TestExtract_CacheSkipsSecondOCR(t *testing.T) {
	source := &fakeSource{text: aadhaarText}
	mem := cache.NewMemoryCache(time.Minute, time.Minute)
	h := newTestServer(t, source, WithCache(mem, time.Minute))

	content := []byte("%PDF-1.4 same bytes")
	for i := 0; i < 2; i++ {
		rec := postFile(t, h, "/extract_aadhaar", "file", "card.pdf", content)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	if source.calls != 1 {
		t.Errorf("expected 1 OCR call with warm cache, got %d", source.calls)
	}
}

func TestExtract_OCRLanguages(t *testing.T) {
	cases := []struct {
		name string
		path string
		cfg  model.OCRConfig
		want string
	}{
		{"aadhaar default", "/extract_aadhaar", model.OCRConfig{}, "eng+guj"},
		{"pan default", "/extract_pan", model.OCRConfig{}, "eng"},
		{"aadhaar override", "/extract_aadhaar", model.OCRConfig{AadhaarLanguages: "eng+hin"}, "eng+hin"},
		{"pan override", "/extract_pan", model.OCRConfig{PANLanguages: "eng+tam"}, "eng+tam"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			source := &fakeSource{text: aadhaarText}
			if tc.path == "/extract_pan" {
				source.text = panText
			}
			h := newTestServer(t, source, WithLanguages(tc.cfg))

			postFile(t, h, tc.path, "file", "card.pdf", []byte("%PDF-1.4"))
			if source.languages != tc.want {
				t.Errorf("OCR invoked with languages %q, want %q", source.languages, tc.want)
			}
		})
	}
}

func TestHealthz(t *testing.T) {
	h := newTestServer(t, &fakeSource{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(t, &fakeSource{text: aadhaarText})

	postFile(t, h, "/extract_aadhaar", "file", "card.pdf", []byte("%PDF-1.4"))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "identia_extractions_total") {
		t.Error("metrics output missing extraction counter")
	}
}

func TestRateLimit(t *testing.T) {
	l := NewClientLimiter(1, 2)

	if !l.Allow("10.0.0.1") || !l.Allow("10.0.0.1") {
		t.Fatal("burst of 2 should be allowed")
	}
	if l.Allow("10.0.0.1") {
		t.Error("third immediate request should be limited")
	}
	if !l.Allow("10.0.0.2") {
		t.Error("other clients have their own bucket")
	}

	unlimited := NewClientLimiter(0, 0)
	for i := 0; i < 100; i++ {
		if !unlimited.Allow("10.0.0.1") {
			t.Fatal("zero rate must disable limiting")
		}
	}
}

package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/ppiankov/identia/internal/cache"
	"github.com/ppiankov/identia/internal/model"
	"github.com/ppiankov/identia/internal/pipeline"
)

type errorBody struct {
	Error string `json:"error"`
}

type rejectedBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type successBody struct {
	Status  string             `json:"status"`
	Data    map[string]*string `json:"data"`
	RawText string             `json:"raw_text"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// handleExtract accepts one multipart PDF in the "file" field, recognizes
// its text and runs the cascade for the given document family.
func (s *Server) handleExtract(docType model.DocumentType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		outcome := "bad_request"
		defer func() {
			s.metrics.ObserveExtraction(string(docType), outcome, time.Since(start))
		}()

		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

		file, header, err := r.FormFile("file")
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{Error: "File too large"})
				return
			}
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "No file part"})
			return
		}
		defer func() { _ = file.Close() }()

		if header.Filename == "" {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "No selected file"})
			return
		}
		if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "Only PDF files are allowed"})
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{Error: "File too large"})
				return
			}
			s.log.Error().Err(err).Str("document_type", string(docType)).Msg("read upload")
			writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
			return
		}

		languages := s.languagesFor(docType)
		text, err := s.recognize(r, data, header.Filename, languages)
		if err != nil {
			outcome = "ocr_error"
			s.log.Error().Err(err).Str("document_type", string(docType)).Msg("ocr failed")
			writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
			return
		}

		rec, err := s.extractor.Extract(text, docType)
		if err != nil {
			if extErr, ok := pipeline.AsExtractionError(err); ok {
				outcome = "rejected"
				s.log.Info().
					Str("document_type", string(docType)).
					Str("missing_field", extErr.Field).
					Msg("mandatory field not found")
				writeJSON(w, http.StatusBadRequest, rejectedBody{Status: "error", Message: extErr.Message})
				return
			}
			s.log.Error().Err(err).Str("document_type", string(docType)).Msg("extraction failed")
			writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
			return
		}

		outcome = "success"
		s.log.Info().
			Str("document_type", string(docType)).
			Dur("duration", time.Since(start)).
			Msg("extracted")
		writeJSON(w, http.StatusOK, successBody{
			Status:  "success",
			Data:    rec.Fields,
			RawText: rec.RawText,
		})
	}
}

// languagesFor resolves the OCR language string for a document family,
// preferring the configured override over the profile default.
func (s *Server) languagesFor(docType model.DocumentType) string {
	if l := s.ocrCfg.Languages(docType); l != "" {
		return l
	}
	return s.extractor.Languages(docType)
}

// recognize runs OCR, consulting the text cache when one is configured.
// Only recognized text is cached, never the upload itself.
func (s *Server) recognize(r *http.Request, data []byte, filename, languages string) (string, error) {
	if s.cache == nil {
		return s.source.ExtractText(r.Context(), data, filename, languages)
	}

	key := cache.Key(data, languages)
	if text, found := s.cache.Get(key); found {
		return text, nil
	}

	text, err := s.source.ExtractText(r.Context(), data, filename, languages)
	if err != nil {
		return "", err
	}
	_ = s.cache.Set(key, text, s.cacheTTL)
	return text, nil
}

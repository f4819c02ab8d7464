package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the extraction API.
type Metrics struct {
	// Extraction outcomes by document type
	Extractions *prometheus.CounterVec

	// End-to-end request latency, OCR included
	ExtractLatency *prometheus.HistogramVec
}

// NewMetrics creates a Metrics instance registered on the given registerer.
// Pass prometheus.NewRegistry() in tests to avoid global-registry collisions.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Extractions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "identia_extractions_total",
			Help: "Total extraction requests by document type and outcome",
		}, []string{"document_type", "outcome"}), // outcome: "success", "rejected", "bad_request", "ocr_error"

		ExtractLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "identia_extract_duration_seconds",
			Help:    "Duration of extraction requests including OCR",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"document_type"}),
	}
}

// ObserveExtraction records one finished extraction request.
func (m *Metrics) ObserveExtraction(docType, outcome string, d time.Duration) {
	if m != nil {
		m.Extractions.WithLabelValues(docType, outcome).Inc()
		m.ExtractLatency.WithLabelValues(docType).Observe(d.Seconds())
	}
}

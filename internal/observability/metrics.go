package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// briefing pipeline.
type Metrics struct {
	ReportsConsumed   prometheus.Counter
	BriefingsProduced prometheus.Counter
	RenderErrors      prometheus.Counter
	PipelineRunning   prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Rendering metrics.
	BriefingLength prometheus.Histogram
	RenderCache    *prometheus.CounterVec // labels: result={hit,miss}

	// HTTP speak endpoint metrics.
	SpeakRequests *prometheus.CounterVec // labels: outcome={success,bad_request}
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ReportsConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "metar_speech",
			Name:      "reports_consumed_total",
			Help:      "Total decoded reports read from the source topic.",
		}),
		BriefingsProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "metar_speech",
			Name:      "briefings_produced_total",
			Help:      "Total spoken briefings written to the sink topic.",
		}),
		RenderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "metar_speech",
			Name:      "render_errors_total",
			Help:      "Total reports skipped because their payload could not be parsed.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "metar_speech",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "metar_speech",
			Name:      "batch_size",
			Help:      "Number of reports per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "metar_speech",
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-render-load cycle.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),
		BriefingLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "metar_speech",
			Name:      "briefing_length_chars",
			Help:      "Character length of rendered briefings.",
			Buckets:   []float64{0, 50, 100, 150, 200, 300, 400, 600},
		}),
		RenderCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "metar_speech",
			Name:      "render_cache_total",
			Help:      "Render cache lookups by result.",
		}, []string{"result"}),
		SpeakRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "metar_speech",
			Name:      "speak_requests_total",
			Help:      "Ad-hoc speak endpoint requests by outcome.",
		}, []string{"outcome"}),
	}

	prometheus.MustRegister(
		m.ReportsConsumed,
		m.BriefingsProduced,
		m.RenderErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.BriefingLength,
		m.RenderCache,
		m.SpeakRequests,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ReportsConsumed:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "metar_speech", Name: "reports_consumed_total"}),
		BriefingsProduced:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "metar_speech", Name: "briefings_produced_total"}),
		RenderErrors:            prometheus.NewCounter(prometheus.CounterOpts{Namespace: "metar_speech", Name: "render_errors_total"}),
		PipelineRunning:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "metar_speech", Name: "pipeline_running"}),
		BatchSize:               prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "metar_speech", Name: "batch_size"}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "metar_speech", Name: "batch_processing_duration_seconds"}),
		BriefingLength:          prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "metar_speech", Name: "briefing_length_chars"}),
		RenderCache:             prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "metar_speech", Name: "render_cache_total"}, []string{"result"}),
		SpeakRequests:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "metar_speech", Name: "speak_requests_total"}, []string{"outcome"}),
	}
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchesTotal  *prometheus.CounterVec
	fetchLatency  *prometheus.HistogramVec
	loadDuration  prometheus.Gauge
	datasets      *prometheus.GaugeVec
	datasetStatus *prometheus.GaugeVec
}

// New creates a Prometheus metrics recorder registered on reg.
// A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Recorder{
		fetchesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brentdash_dataset_fetches_total",
				Help: "Dataset fetches by outcome",
			},
			[]string{"dataset", "result"},
		),
		fetchLatency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "brentdash_dataset_fetch_duration_seconds",
				Help:    "Duration of a single dataset fetch in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"dataset"},
		),
		loadDuration: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "brentdash_load_duration_seconds",
				Help: "Duration of the last full dataset load",
			},
		),
		datasets: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "brentdash_datasets",
				Help: "Datasets by state after the last load",
			},
			[]string{"state"},
		),
		datasetStatus: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "brentdash_dataset_loaded",
				Help: "1 when the dataset loaded, 0 when it failed",
			},
			[]string{"dataset"},
		),
	}
}

// RecordFetch records one dataset fetch.
func (r *Recorder) RecordFetch(dataset string, ok bool, seconds float64) {
	result := "ok"
	if !ok {
		result = "error"
	}
	r.fetchesTotal.WithLabelValues(dataset, result).Inc()
	r.fetchLatency.WithLabelValues(dataset).Observe(seconds)
}

// RecordLoad records the totals of a completed load.
func (r *Recorder) RecordLoad(loaded, failed int, seconds float64) {
	r.datasets.WithLabelValues("loaded").Set(float64(loaded))
	r.datasets.WithLabelValues("failed").Set(float64(failed))
	r.loadDuration.Set(seconds)
}

// RecordDatasetStatus records whether a dataset is available for rendering.
func (r *Recorder) RecordDatasetStatus(dataset string, loaded bool) {
	v := 0.0
	if loaded {
		v = 1
	}
	r.datasetStatus.WithLabelValues(dataset).Set(v)
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) RecordFetch(string, bool, float64) {}
func (Nop) RecordLoad(int, int, float64) {}
func (Nop) RecordDatasetStatus(string, bool) {}

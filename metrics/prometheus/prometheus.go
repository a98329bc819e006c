package prometheusmetrics

import (
	"strconv"
	"time"

	"github.com/prebid/bidmachine-max-adapter/config"
	"github.com/prebid/bidmachine-max-adapter/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics defines the Prometheus metrics backing the MetricsEngine implementation.
type Metrics struct {
	Registry *prometheus.Registry

	initializations   *prometheus.CounterVec
	signalCollections *prometheus.CounterVec
	adLoads           *prometheus.CounterVec
	adShows           *prometheus.CounterVec
	rewards           *prometheus.CounterVec
	imageFetches      *prometheus.CounterVec
	imageFetchTimer   *prometheus.HistogramVec

	metricsDisabled config.DisabledMetrics
}

const (
	adFormatLabel = "ad_format"
	grantedLabel  = "granted"
	outcomeLabel  = "outcome"
	statusLabel   = "status"
	successLabel  = "success"
)

// NewMetrics initializes a new Prometheus metrics instance with preloaded label values.
func NewMetrics(cfg config.PrometheusMetrics, disabledMetrics config.DisabledMetrics) *Metrics {
	imageFetchTimeBuckets := []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

	metrics := Metrics{}
	metrics.Registry = prometheus.NewRegistry()
	metrics.metricsDisabled = disabledMetrics

	metrics.initializations = newCounter(cfg, metrics.Registry,
		"initializations",
		"Count of adapter initialize calls labeled by what the call did.",
		[]string{statusLabel})

	metrics.signalCollections = newCounter(cfg, metrics.Registry,
		"signal_collections",
		"Count of bid token collections labeled by success.",
		[]string{successLabel})

	metrics.adLoads = newCounter(cfg, metrics.Registry,
		"ad_loads",
		"Count of ad loads labeled by ad format and outcome.",
		[]string{adFormatLabel, outcomeLabel})

	metrics.adShows = newCounter(cfg, metrics.Registry,
		"ad_shows",
		"Count of ad shows labeled by ad format and outcome.",
		[]string{adFormatLabel, outcomeLabel})

	metrics.rewards = newCounter(cfg, metrics.Registry,
		"rewards",
		"Count of rewarded ad closes labeled by whether the user was rewarded.",
		[]string{grantedLabel})

	metrics.imageFetches = newCounter(cfg, metrics.Registry,
		"image_fetches",
		"Count of native icon downloads labeled by outcome.",
		[]string{outcomeLabel})

	if !disabledMetrics.ImageFetch {
		metrics.imageFetchTimer = newHistogramVec(cfg, metrics.Registry,
			"image_fetch_time_seconds",
			"Seconds spent downloading native icons labeled by outcome.",
			[]string{outcomeLabel},
			imageFetchTimeBuckets)
	}

	preloadLabelValues(&metrics)

	return &metrics
}

func newCounter(cfg config.PrometheusMetrics, registry *prometheus.Registry, name, help string, labels []string) *prometheus.CounterVec {
	opts := prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
	}
	counter := prometheus.NewCounterVec(opts, labels)
	registry.MustRegister(counter)
	return counter
}

func newHistogramVec(cfg config.PrometheusMetrics, registry *prometheus.Registry, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	opts := prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}
	histogram := prometheus.NewHistogramVec(opts, labels)
	registry.MustRegister(histogram)
	return histogram
}

func (m *Metrics) RecordInitialization(status metrics.InitStatus) {
	m.initializations.With(prometheus.Labels{
		statusLabel: string(status),
	}).Inc()
}

func (m *Metrics) RecordSignalCollection(success bool) {
	m.signalCollections.With(prometheus.Labels{
		successLabel: strconv.FormatBool(success),
	}).Inc()
}

func (m *Metrics) RecordAdLoad(labels metrics.AdLabels) {
	m.adLoads.With(prometheus.Labels{
		adFormatLabel: string(labels.AdFormat),
		outcomeLabel:  string(labels.Outcome),
	}).Inc()
}

func (m *Metrics) RecordAdShow(labels metrics.AdLabels) {
	m.adShows.With(prometheus.Labels{
		adFormatLabel: string(labels.AdFormat),
		outcomeLabel:  string(labels.Outcome),
	}).Inc()
}

func (m *Metrics) RecordReward(granted bool) {
	m.rewards.With(prometheus.Labels{
		grantedLabel: strconv.FormatBool(granted),
	}).Inc()
}

func (m *Metrics) RecordImageFetch(outcome metrics.ImageFetchOutcome, length time.Duration) {
	m.imageFetches.With(prometheus.Labels{
		outcomeLabel: string(outcome),
	}).Inc()

	if m.imageFetchTimer != nil {
		m.imageFetchTimer.With(prometheus.Labels{
			outcomeLabel: string(outcome),
		}).Observe(length.Seconds())
	}
}

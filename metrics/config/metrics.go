package config

import (
	"time"

	"github.com/prebid/bidmachine-max-adapter/config"
	"github.com/prebid/bidmachine-max-adapter/metrics"
	prometheusmetrics "github.com/prebid/bidmachine-max-adapter/metrics/prometheus"
	gometrics "github.com/rcrowley/go-metrics"
)

// NewMetricsEngine reads the configuration and returns the appropriate metrics engine
// for this adapter.
func NewMetricsEngine(cfg *config.Configuration) *DetailedMetricsEngine {
	// Create a list of metrics engines to use.
	// Capacity of 2, as unlikely to have more than 2 metrics backends, and in the case
	// of 1 we won't use the list so it will be garbage collected.
	engineList := make(MultiMetricsEngine, 0, 2)
	returnEngine := DetailedMetricsEngine{}

	if cfg.Metrics.GoMetrics.Enabled {
		returnEngine.GoMetrics = metrics.NewMetrics(gometrics.NewPrefixedRegistry(cfg.Metrics.GoMetrics.Prefix), cfg.Metrics.Disabled)
		engineList = append(engineList, returnEngine.GoMetrics)
	}
	if cfg.Metrics.Prometheus.Enabled {
		returnEngine.PrometheusMetrics = prometheusmetrics.NewMetrics(cfg.Metrics.Prometheus, cfg.Metrics.Disabled)
		engineList = append(engineList, returnEngine.PrometheusMetrics)
	}

	// Now return the proper metrics engine
	if len(engineList) > 1 {
		returnEngine.MetricsEngine = &engineList
	} else if len(engineList) == 1 {
		returnEngine.MetricsEngine = engineList[0]
	} else {
		returnEngine.MetricsEngine = &NilMetricsEngine{}
	}

	return &returnEngine
}

// DetailedMetricsEngine is a MultiMetricsEngine that preserves links to underlying metrics engines.
type DetailedMetricsEngine struct {
	metrics.MetricsEngine
	GoMetrics         *metrics.Metrics
	PrometheusMetrics *prometheusmetrics.Metrics
}

// MultiMetricsEngine logs metrics to multiple metrics databases The can be useful in transitioning
// an instance from one engine to another, you can run both in parallel to verify stats match up.
type MultiMetricsEngine []metrics.MetricsEngine

func (me *MultiMetricsEngine) RecordInitialization(status metrics.InitStatus) {
	for _, thisME := range *me {
		thisME.RecordInitialization(status)
	}
}

func (me *MultiMetricsEngine) RecordSignalCollection(success bool) {
	for _, thisME := range *me {
		thisME.RecordSignalCollection(success)
	}
}

func (me *MultiMetricsEngine) RecordAdLoad(labels metrics.AdLabels) {
	for _, thisME := range *me {
		thisME.RecordAdLoad(labels)
	}
}

func (me *MultiMetricsEngine) RecordAdShow(labels metrics.AdLabels) {
	for _, thisME := range *me {
		thisME.RecordAdShow(labels)
	}
}

func (me *MultiMetricsEngine) RecordReward(granted bool) {
	for _, thisME := range *me {
		thisME.RecordReward(granted)
	}
}

func (me *MultiMetricsEngine) RecordImageFetch(outcome metrics.ImageFetchOutcome, length time.Duration) {
	for _, thisME := range *me {
		thisME.RecordImageFetch(outcome, length)
	}
}

// NilMetricsEngine implements the MetricsEngine interface where no metrics are actually captured. This is
// used if no metric backend is configured and also for tests.
type NilMetricsEngine struct{}

func (me *NilMetricsEngine) RecordInitialization(status metrics.InitStatus) {}

func (me *NilMetricsEngine) RecordSignalCollection(success bool) {}

func (me *NilMetricsEngine) RecordAdLoad(labels metrics.AdLabels) {}

func (me *NilMetricsEngine) RecordAdShow(labels metrics.AdLabels) {}

func (me *NilMetricsEngine) RecordReward(granted bool) {}

func (me *NilMetricsEngine) RecordImageFetch(outcome metrics.ImageFetchOutcome, length time.Duration) {}

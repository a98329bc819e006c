package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/golang/glog"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/prebid/bidmachine-max-adapter/config"
	metricsconfig "github.com/prebid/bidmachine-max-adapter/metrics/config"
)

const metricsPath = "/metrics"

func newPrometheusServer(cfg *config.Configuration, metrics *metricsconfig.DetailedMetricsEngine) (*http.Server, error) {
	if metrics == nil || metrics.PrometheusMetrics == nil {
		return nil, errors.New("Prometheus metrics configured, but a Prometheus metrics engine was not found. Cannot set up a Prometheus listener.")
	}
	proMetrics := metrics.PrometheusMetrics

	router := httprouter.New()
	router.Handler(http.MethodGet, metricsPath, promhttp.HandlerFor(proMetrics.Registry, promhttp.HandlerOpts{
		ErrorLog:            loggerForPrometheus{},
		MaxRequestsInFlight: 5,
		Timeout:             cfg.Metrics.Prometheus.Timeout(),
	}))

	return &http.Server{
		Addr:    cfg.Metrics.Prometheus.Host + ":" + strconv.Itoa(cfg.Metrics.Prometheus.Port),
		Handler: router,
	}, nil
}

type loggerForPrometheus struct{}

func (loggerForPrometheus) Println(v ...interface{}) {
	glog.Warningln(v...)
}

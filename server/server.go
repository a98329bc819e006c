// Package server exposes the adapter's Prometheus metrics to scrapers. Hosts that embed the
// adapter in a long running process start it next to their own servers.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang/glog"

	"github.com/prebid/bidmachine-max-adapter/config"
	metricsconfig "github.com/prebid/bidmachine-max-adapter/metrics/config"
)

const shutdownTimeout = 10 * time.Second

// Listen serves the Prometheus endpoint until ctx is done, then shuts it down gracefully. It
// returns immediately when no port is configured.
func Listen(ctx context.Context, cfg *config.Configuration, metrics *metricsconfig.DetailedMetricsEngine) error {
	if cfg.Metrics.Prometheus.Port == 0 {
		glog.Info("Prometheus port not configured, metrics endpoint disabled")
		return nil
	}

	prometheusServer, err := newPrometheusServer(cfg, metrics)
	if err != nil {
		return err
	}

	prometheusListener, err := newListener(prometheusServer.Addr)
	if err != nil {
		return err
	}

	return serve(ctx, prometheusServer, "Prometheus", prometheusListener)
}

// ListenUntilSignal is Listen bound to SIGTERM and SIGINT.
func ListenUntilSignal(cfg *config.Configuration, metrics *metricsconfig.DetailedMetricsEngine) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	return Listen(ctx, cfg, metrics)
}

func serve(ctx context.Context, server *http.Server, name string, listener net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		glog.Infof("%s server starting on: %s", name, listener.Addr())
		serveErr <- server.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		glog.Errorf("%s server quit with error: %v", name, err)
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	glog.Infof("Stopping %s server on %s", name, listener.Addr())
	if err := server.Shutdown(shutdownCtx); err != nil {
		glog.Errorf("Failed to shutdown %s: %v", listener.Addr(), err)
		return err
	}

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

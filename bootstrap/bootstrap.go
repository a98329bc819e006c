// Package bootstrap performs the process wide setup a host runs once before creating adapters:
// configuration, logging, metrics and the optional metrics endpoint.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/prebid/bidmachine-max-adapter/adapters/bidmachine"
	"github.com/prebid/bidmachine-max-adapter/config"
	"github.com/prebid/bidmachine-max-adapter/logger"
	"github.com/prebid/bidmachine-max-adapter/max"
	metricsconfig "github.com/prebid/bidmachine-max-adapter/metrics/config"
	bm "github.com/prebid/bidmachine-max-adapter/sdk/bidmachine"
	"github.com/prebid/bidmachine-max-adapter/server"
)

// ConfigFileName is looked up in the working directory and /etc/config.
const ConfigFileName = "bidmachine"

// Runtime holds what every adapter instance in the process shares.
type Runtime struct {
	Config        *config.Configuration
	MetricsEngine *metricsconfig.DetailedMetricsEngine
}

// LoadConfig reads the named config file, if present, and the environment. Extra directories are
// searched after the default ones.
func LoadConfig(filename string, extraPaths ...string) (*config.Configuration, error) {
	v := viper.New()
	config.SetupViper(v, filename)
	for _, path := range extraPaths {
		v.AddConfigPath(path)
	}
	if filename != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file %s: %v", filename, err)
			}
		}
	}
	return config.New(v)
}

// New installs the configured logger and builds the metrics engines.
func New(cfg *config.Configuration) (*Runtime, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}

	depth := cfg.Logger.Depth
	if err := logger.New(cfg.Logger.Type, &depth); err != nil {
		return nil, fmt.Errorf("logger could not be initialized: %v", err)
	}

	return &Runtime{
		Config:        cfg,
		MetricsEngine: metricsconfig.NewMetricsEngine(cfg),
	}, nil
}

// NewAdapter builds a BidMachine adapter sharing this runtime's configuration and metrics.
func (r *Runtime) NewAdapter(host max.SDK, network bm.SDK) (*bidmachine.MediationAdapter, error) {
	return bidmachine.Builder(r.Config, host, network, r.MetricsEngine)
}

// ServeMetrics blocks serving the Prometheus endpoint until ctx is done.
func (r *Runtime) ServeMetrics(ctx context.Context) error {
	return server.Listen(ctx, r.Config, r.MetricsEngine)
}

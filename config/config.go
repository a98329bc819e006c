package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prebid/bidmachine-max-adapter/errortypes"
	"github.com/spf13/viper"
)

// Configuration
type Configuration struct {
	Adapter Adapter `mapstructure:"adapter"`
	GDPR    GDPR    `mapstructure:"gdpr"`
	Logger  Logger  `mapstructure:"logger"`
	Metrics Metrics `mapstructure:"metrics"`
}

type Adapter struct {
	// ImageTaskTimeoutSeconds bounds the native icon download. Server parameters may override it per ad unit.
	ImageTaskTimeoutSeconds int `mapstructure:"image_task_timeout_seconds"`
	ImageFetchWorkers       int `mapstructure:"image_fetch_workers"`
	ImageFetchQueue         int `mapstructure:"image_fetch_queue"`
	// AlwaysRewardUser grants rewards on close for every ad unit, regardless of the network callback.
	AlwaysRewardUser bool `mapstructure:"always_reward_user"`
}

type GDPR struct {
	// VendorID is BidMachine's IAB Global Vendor List ID, used to read consent out of TCF strings.
	VendorID uint16 `mapstructure:"vendor_id"`
}

type Logger struct {
	Type  string `mapstructure:"type"`
	Depth int    `mapstructure:"depth"`
}

type Metrics struct {
	Prometheus PrometheusMetrics `mapstructure:"prometheus"`
	GoMetrics  GoMetrics         `mapstructure:"gometrics"`
	Disabled   DisabledMetrics   `mapstructure:"disabled_metrics"`
}

type PrometheusMetrics struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
	Subsystem string `mapstructure:"subsystem"`
	// Host and Port locate the scrape endpoint. A zero port keeps the endpoint off.
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	TimeoutMillis int    `mapstructure:"timeout_ms"`
}

// Timeout bounds how long a scrape may take.
func (cfg *PrometheusMetrics) Timeout() time.Duration {
	return time.Duration(cfg.TimeoutMillis) * time.Millisecond
}

type GoMetrics struct {
	Enabled bool   `mapstructure:"enabled"`
	Prefix  string `mapstructure:"prefix"`
}

type DisabledMetrics struct {
	// ImageFetch turns off the per fetch timer, which is the only metric recorded off the UI path.
	ImageFetch bool `mapstructure:"image_fetch"`
}

// ImageTaskTimeout is the configured icon download bound as a duration.
func (cfg Adapter) ImageTaskTimeout() time.Duration {
	return time.Duration(cfg.ImageTaskTimeoutSeconds) * time.Second
}

func (cfg *Configuration) validate() []error {
	var errs []error
	if cfg.Adapter.ImageTaskTimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("adapter.image_task_timeout_seconds must be positive. Got %d", cfg.Adapter.ImageTaskTimeoutSeconds))
	}
	if cfg.Adapter.ImageFetchWorkers <= 0 {
		errs = append(errs, fmt.Errorf("adapter.image_fetch_workers must be positive. Got %d", cfg.Adapter.ImageFetchWorkers))
	}
	if cfg.Adapter.ImageFetchQueue < 0 {
		errs = append(errs, fmt.Errorf("adapter.image_fetch_queue must not be negative. Got %d", cfg.Adapter.ImageFetchQueue))
	}
	if cfg.GDPR.VendorID == 0 {
		errs = append(errs, errors.New("gdpr.vendor_id must be set"))
	}
	if cfg.Metrics.Prometheus.Port < 0 || cfg.Metrics.Prometheus.Port > 65535 {
		errs = append(errs, fmt.Errorf("metrics.prometheus.port must be between 0 and 65535. Got %d", cfg.Metrics.Prometheus.Port))
	}
	if cfg.Metrics.Prometheus.Port != 0 && !cfg.Metrics.Prometheus.Enabled {
		errs = append(errs, errors.New("metrics.prometheus.port is set but metrics.prometheus.enabled is false"))
	}
	switch cfg.Logger.Type {
	case "glog", "slog", "logrus":
	default:
		errs = append(errs, fmt.Errorf("logger.type must be one of glog, slog, logrus. Got %q", cfg.Logger.Type))
	}
	return errs
}

// New uses viper to get the adapter configuration.
func New(v *viper.Viper) (*Configuration, error) {
	var c Configuration
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("viper failed to unmarshal app config: %v", err)
	}

	if errs := c.validate(); len(errs) > 0 {
		return &c, errortypes.NewAggregateErrors("validation errors", errs)
	}

	return &c, nil
}

// SetupViper registers the defaults and, when filename is non-empty, the config file to read.
// Environment variables prefixed with BMMAX_ override file values.
func SetupViper(v *viper.Viper, filename string) {
	if filename != "" {
		v.SetConfigName(filename)
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/config")
	}

	v.SetDefault("adapter.image_task_timeout_seconds", 10)
	v.SetDefault("adapter.image_fetch_workers", 4)
	v.SetDefault("adapter.image_fetch_queue", 64)
	v.SetDefault("adapter.always_reward_user", false)
	v.SetDefault("gdpr.vendor_id", 736)
	v.SetDefault("logger.type", "glog")
	v.SetDefault("logger.depth", 1)
	v.SetDefault("metrics.prometheus.enabled", false)
	v.SetDefault("metrics.prometheus.namespace", "bidmachine")
	v.SetDefault("metrics.prometheus.subsystem", "max_adapter")
	v.SetDefault("metrics.prometheus.host", "")
	v.SetDefault("metrics.prometheus.port", 0)
	v.SetDefault("metrics.prometheus.timeout_ms", 10000)
	v.SetDefault("metrics.gometrics.enabled", false)
	v.SetDefault("metrics.gometrics.prefix", "bidmachine.max_adapter.")
	v.SetDefault("metrics.disabled_metrics.image_fetch", false)

	v.SetEnvPrefix("BMMAX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

package bidmachine

import (
	"fmt"
	"sync"

	"github.com/alitto/pond"
	"github.com/benbjohnson/clock"
	"github.com/prebid/bidmachine-max-adapter/config"
	"github.com/prebid/bidmachine-max-adapter/logger"
	"github.com/prebid/bidmachine-max-adapter/max"
	"github.com/prebid/bidmachine-max-adapter/metrics"
	bm "github.com/prebid/bidmachine-max-adapter/sdk/bidmachine"
)

// AdapterVersion is overridden at build time with -ldflags.
var AdapterVersion = "1.0.0.0"

const tag = "BidMachineMediationAdapter"

// Server and custom parameter keys.
const (
	sourceIDKey         = "source_id"
	templateKey         = "template"
	imageTaskTimeoutKey = "image_task_timeout_seconds"
	alwaysRewardUserKey = "always_reward_user"
)

// MediationAdapter serves BidMachine demand to the MAX mediation host. It implements signal
// collection, interstitial, rewarded, ad view and native ads. An instance holds at most one ad
// handle per format; a new load replaces the previous handle without cancelling it.
type MediationAdapter struct {
	sdk          max.SDK
	network      bm.SDK
	metrics      metrics.MetricsEngine
	cfg          config.Adapter
	gdprVendorID uint16

	initState *initState
	clock     clock.Clock
	pool      *pond.WorkerPool

	mu                   sync.Mutex
	interstitialAd       bm.InterstitialAd
	interstitialListener *interstitialAdListener
	rewardedAd           bm.RewardedAd
	rewardedListener     *rewardedAdListener
	adView               bm.BannerView
	adViewListener       *adViewListener
	nativeAd             bm.NativeAd
	nativeListener       *nativeAdListener

	reward           max.Reward
	alwaysRewardUser bool
}

var (
	sharedPoolOnce sync.Once
	sharedPool     *pond.WorkerPool
)

// imageFetchPool returns the process wide pool that runs native icon downloads. It is sized by
// the configuration of the first adapter that asks for it.
func imageFetchPool(cfg config.Adapter) *pond.WorkerPool {
	sharedPoolOnce.Do(func() {
		sharedPool = pond.New(cfg.ImageFetchWorkers, cfg.ImageFetchQueue)
	})
	return sharedPool
}

// Builder builds a new instance of the BidMachine mediation adapter.
func Builder(cfg *config.Configuration, sdk max.SDK, network bm.SDK, metricsEngine metrics.MetricsEngine) (*MediationAdapter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%s: configuration is required", tag)
	}
	if sdk == nil || network == nil {
		return nil, fmt.Errorf("%s: host and network SDKs are required", tag)
	}
	if metricsEngine == nil {
		return nil, fmt.Errorf("%s: metrics engine is required", tag)
	}

	return &MediationAdapter{
		sdk:          sdk,
		network:      network,
		metrics:      metricsEngine,
		cfg:          cfg.Adapter,
		gdprVendorID: cfg.GDPR.VendorID,
		initState:    sdkInitState,
		clock:        clock.New(),
		pool:         imageFetchPool(cfg.Adapter),
	}, nil
}

// SDKVersion is the version string reported by the BidMachine SDK.
func (a *MediationAdapter) SDKVersion() string {
	return a.network.Version()
}

// AdapterVersion is the version of this adapter build.
func (a *MediationAdapter) AdapterVersion() string {
	return AdapterVersion
}

// OnDestroy releases every ad handle. Listeners are detached and unregistered before the
// network object is destroyed so a late SDK callback cannot reach the host. Safe to call more
// than once.
func (a *MediationAdapter) OnDestroy() {
	a.mu.Lock()
	interstitialAd, interstitialListener := a.interstitialAd, a.interstitialListener
	rewardedAd, rewardedListener := a.rewardedAd, a.rewardedListener
	adView, adViewListener := a.adView, a.adViewListener
	nativeAd, nativeListener := a.nativeAd, a.nativeListener
	a.interstitialAd, a.interstitialListener = nil, nil
	a.rewardedAd, a.rewardedListener = nil, nil
	a.adView, a.adViewListener = nil, nil
	a.nativeAd, a.nativeListener = nil, nil
	a.mu.Unlock()

	if interstitialAd != nil {
		interstitialListener.detach()
		interstitialAd.SetListener(nil)
		interstitialAd.Destroy()
	}

	if rewardedAd != nil {
		rewardedListener.detach()
		rewardedAd.SetListener(nil)
		rewardedAd.Destroy()
	}

	if adView != nil {
		adViewListener.detach()
		adView.SetListener(nil)
		adView.Destroy()
	}

	if nativeAd != nil {
		nativeAd.UnregisterView()
		nativeListener.detach()
		nativeAd.SetListener(nil)
		nativeAd.Destroy()
	}
}

func (a *MediationAdapter) log(format string, args ...any) {
	logger.Infof(tag+": "+format, args...)
}

func (a *MediationAdapter) e(format string, args ...any) {
	logger.Errorf(tag+": "+format, args...)
}

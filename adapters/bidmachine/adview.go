package bidmachine

import (
	"fmt"

	"github.com/prebid/bidmachine-max-adapter/errortypes"
	"github.com/prebid/bidmachine-max-adapter/max"
	"github.com/prebid/bidmachine-max-adapter/metrics"
	bm "github.com/prebid/bidmachine-max-adapter/sdk/bidmachine"
)

// LoadAdViewAd loads a banner, leader or MREC. It panics for any other format, which is a host
// programming error.
func (a *MediationAdapter) LoadAdViewAd(params *max.ResponseParameters, adFormat max.AdFormat, listener max.AdViewAdapterListener) {
	size := toAdSize(adFormat)
	a.log("Loading %s ad view ad...", adFormat.Label())

	a.updateSettings(&params.AdapterParameters)

	adView := a.network.NewBannerView()
	adListener := &adViewListener{
		listenerBase: listenerBase{adapter: a},
		listener:     listener,
		adFormat:     adFormat,
	}

	a.mu.Lock()
	a.adView = adView
	a.adViewListener = adListener
	a.mu.Unlock()

	adView.SetListener(adListener)
	a.metrics.RecordAdLoad(metrics.AdLabels{AdFormat: metrics.AdFormatAdView, Outcome: metrics.OutcomeRequested})
	adView.Load(&bm.BannerRequest{
		Size:       size,
		BidPayload: params.BidResponse,
	})
}

func toAdSize(adFormat max.AdFormat) bm.BannerSize {
	switch adFormat {
	case max.AdFormatBanner:
		return bm.BannerSize320x50
	case max.AdFormatLeader:
		return bm.BannerSize728x90
	case max.AdFormatMREC:
		return bm.BannerSize300x250
	}
	panic(&errortypes.InvalidAdFormat{
		Message: fmt.Sprintf("Invalid ad format: %s", adFormat.Label()),
	})
}

type adViewListener struct {
	listenerBase
	listener max.AdViewAdapterListener
	adFormat max.AdFormat
}

func (l *adViewListener) OnAdLoaded(view bm.BannerView) {
	if !l.active("loaded") {
		return
	}
	l.adapter.log("%s ad loaded", l.adFormat.Label())
	l.adapter.metrics.RecordAdLoad(metrics.AdLabels{AdFormat: metrics.AdFormatAdView, Outcome: metrics.OutcomeSuccess})
	l.listener.OnAdViewAdLoaded(view)
}

func (l *adViewListener) OnAdLoadFailed(view bm.BannerView, bmError *bm.Error) {
	if !l.active("load failed") {
		return
	}
	maxAdapterError := toMaxError(bmError)
	l.adapter.log("%s ad failed to load with error (%v)", l.adFormat.Label(), maxAdapterError)
	l.adapter.metrics.RecordAdLoad(metrics.AdLabels{AdFormat: metrics.AdFormatAdView, Outcome: metrics.OutcomeFailure})
	l.listener.OnAdViewAdLoadFailed(maxAdapterError)
}

func (l *adViewListener) OnAdShown(view bm.BannerView) {
	l.adapter.log("%s ad shown", l.adFormat.Label())
}

func (l *adViewListener) OnAdImpression(view bm.BannerView) {
	if !l.active("impression") {
		return
	}
	l.adapter.log("%s ad impression", l.adFormat.Label())
	l.adapter.metrics.RecordAdShow(metrics.AdLabels{AdFormat: metrics.AdFormatAdView, Outcome: metrics.OutcomeSuccess})
	l.listener.OnAdViewAdDisplayed()
}

func (l *adViewListener) OnAdClicked(view bm.BannerView) {
	if !l.active("clicked") {
		return
	}
	l.adapter.log("%s ad clicked", l.adFormat.Label())
	l.listener.OnAdViewAdClicked()
}

func (l *adViewListener) OnAdExpired(view bm.BannerView) {
	l.adapter.log("%s ad expired", l.adFormat.Label())
}

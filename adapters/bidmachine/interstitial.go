package bidmachine

import (
	"github.com/prebid/bidmachine-max-adapter/max"
	"github.com/prebid/bidmachine-max-adapter/metrics"
	bm "github.com/prebid/bidmachine-max-adapter/sdk/bidmachine"
)

func (a *MediationAdapter) LoadInterstitialAd(params *max.ResponseParameters, listener max.InterstitialAdapterListener) {
	a.log("Loading interstitial ad...")

	a.updateSettings(&params.AdapterParameters)

	interstitialAd := a.network.NewInterstitialAd()
	adListener := &interstitialAdListener{
		listenerBase: listenerBase{adapter: a},
		listener:     listener,
	}

	a.mu.Lock()
	a.interstitialAd = interstitialAd
	a.interstitialListener = adListener
	a.mu.Unlock()

	interstitialAd.SetListener(adListener)
	a.metrics.RecordAdLoad(metrics.AdLabels{AdFormat: metrics.AdFormatInterstitial, Outcome: metrics.OutcomeRequested})
	interstitialAd.Load(&bm.InterstitialRequest{
		BidPayload: params.BidResponse,
	})
}

func (a *MediationAdapter) ShowInterstitialAd(params *max.ResponseParameters, listener max.InterstitialAdapterListener) {
	a.log("Showing interstitial ad...")

	a.mu.Lock()
	interstitialAd := a.interstitialAd
	a.mu.Unlock()

	var ad showable
	if interstitialAd != nil {
		ad = interstitialAd
	}
	if err := a.showPrecondition(ad, "interstitial"); err != nil {
		a.metrics.RecordAdShow(metrics.AdLabels{AdFormat: metrics.AdFormatInterstitial, Outcome: metrics.OutcomeRejected})
		listener.OnInterstitialAdDisplayFailed(err)
		return
	}

	a.metrics.RecordAdShow(metrics.AdLabels{AdFormat: metrics.AdFormatInterstitial, Outcome: metrics.OutcomeRequested})
	interstitialAd.Show()
}

type interstitialAdListener struct {
	listenerBase
	listener max.InterstitialAdapterListener
}

func (l *interstitialAdListener) OnAdLoaded(ad bm.InterstitialAd) {
	if !l.active("loaded") {
		return
	}
	l.adapter.log("Interstitial ad loaded")
	l.adapter.metrics.RecordAdLoad(metrics.AdLabels{AdFormat: metrics.AdFormatInterstitial, Outcome: metrics.OutcomeSuccess})
	l.listener.OnInterstitialAdLoaded()
}

func (l *interstitialAdListener) OnAdLoadFailed(ad bm.InterstitialAd, bmError *bm.Error) {
	if !l.active("load failed") {
		return
	}
	maxAdapterError := toMaxError(bmError)
	l.adapter.log("Interstitial ad failed to load with error (%v)", maxAdapterError)
	l.adapter.metrics.RecordAdLoad(metrics.AdLabels{AdFormat: metrics.AdFormatInterstitial, Outcome: metrics.OutcomeFailure})
	l.listener.OnInterstitialAdLoadFailed(maxAdapterError)
}

func (l *interstitialAdListener) OnAdShown(ad bm.InterstitialAd) {
	l.adapter.log("Interstitial ad shown")
}

func (l *interstitialAdListener) OnAdShowFailed(ad bm.InterstitialAd, bmError *bm.Error) {
	if !l.active("show failed") {
		return
	}
	maxAdapterError := toMaxError(bmError)
	l.adapter.log("Interstitial ad failed to show with error (%v)", maxAdapterError)
	l.adapter.metrics.RecordAdShow(metrics.AdLabels{AdFormat: metrics.AdFormatInterstitial, Outcome: metrics.OutcomeFailure})
	l.listener.OnInterstitialAdDisplayFailed(maxAdapterError)
}

func (l *interstitialAdListener) OnAdImpression(ad bm.InterstitialAd) {
	if !l.active("impression") {
		return
	}
	l.adapter.log("Interstitial ad impression")
	l.adapter.metrics.RecordAdShow(metrics.AdLabels{AdFormat: metrics.AdFormatInterstitial, Outcome: metrics.OutcomeSuccess})
	l.listener.OnInterstitialAdDisplayed()
}

func (l *interstitialAdListener) OnAdClicked(ad bm.InterstitialAd) {
	if !l.active("clicked") {
		return
	}
	l.adapter.log("Interstitial ad clicked")
	l.listener.OnInterstitialAdClicked()
}

func (l *interstitialAdListener) OnAdClosed(ad bm.InterstitialAd, finished bool) {
	if !l.active("closed") {
		return
	}
	l.adapter.log("Interstitial ad closed")
	l.listener.OnInterstitialAdHidden()
}

func (l *interstitialAdListener) OnAdExpired(ad bm.InterstitialAd) {
	l.adapter.log("Interstitial ad expired")
}

package bidmachine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prebid/bidmachine-max-adapter/errortypes"
	"github.com/prebid/bidmachine-max-adapter/max"
	"github.com/prebid/bidmachine-max-adapter/metrics"
	bm "github.com/prebid/bidmachine-max-adapter/sdk/bidmachine"
)

func (a *MediationAdapter) LoadNativeAd(params *max.ResponseParameters, listener max.NativeAdAdapterListener) {
	a.log("Loading native ad...")

	a.updateSettings(&params.AdapterParameters)

	nativeAd := a.network.NewNativeAd()
	adListener := &nativeAdListener{
		listenerBase:     listenerBase{adapter: a},
		listener:         listener,
		serverParameters: params.ServerParameters,
	}

	a.mu.Lock()
	a.nativeAd = nativeAd
	a.nativeListener = adListener
	a.mu.Unlock()

	nativeAd.SetListener(adListener)
	a.metrics.RecordAdLoad(metrics.AdLabels{AdFormat: metrics.AdFormatNative, Outcome: metrics.OutcomeRequested})
	nativeAd.Load(&bm.NativeRequest{
		MediaAssetTypes: bm.MediaAssetTypesAll,
		BidPayload:      params.BidResponse,
	})
}

type nativeAdListener struct {
	listenerBase
	listener         max.NativeAdAdapterListener
	serverParameters max.Bundle
}

func (l *nativeAdListener) OnAdLoaded(ad bm.NativeAd) {
	if !l.active("loaded") {
		return
	}
	l.adapter.log("Native ad loaded")

	template := l.serverParameters.String(templateKey, "")
	if template != "" && ad.Title() == "" {
		l.adapter.e("Native ad does not have required assets")
		l.adapter.metrics.RecordAdLoad(metrics.AdLabels{AdFormat: metrics.AdFormatNative, Outcome: metrics.OutcomeFailure})
		l.listener.OnNativeAdLoadFailed(max.MissingNativeAdAssets)
		return
	}

	icon := ad.Icon()
	switch {
	case icon == nil:
		l.handleNativeAdLoaded(ad, nil)
	case len(icon.Image) > 0:
		l.handleNativeAdLoaded(ad, &max.NativeAdImage{Drawable: icon.Image})
	case icon.LocalURI != "":
		l.handleNativeAdLoaded(ad, &max.NativeAdImage{URI: icon.LocalURI})
	case icon.RemoteURL != "":
		l.fetchIcon(ad, icon.RemoteURL)
	default:
		l.handleNativeAdLoaded(ad, nil)
	}
}

// fetchIcon downloads the icon on the image pool and finalizes the ad with whatever it got.
func (l *nativeAdListener) fetchIcon(ad bm.NativeAd, url string) {
	a := l.adapter
	timeout := l.iconFetchTimeout()

	a.log("Fetching native ad icon: %s", url)
	a.pool.Submit(func() {
		var icon *max.NativeAdImage
		data, err := a.fetchImage(url, timeout)
		if err != nil {
			a.e("Failed to fetch icon image from URL: %s with error (%d): %v", url, errortypes.ReadCode(err), err)
		} else {
			icon = &max.NativeAdImage{Drawable: data}
		}
		l.handleNativeAdLoaded(ad, icon)
	})
}

// iconFetchTimeout prefers a positive server parameter over the configured bound.
func (l *nativeAdListener) iconFetchTimeout() time.Duration {
	if seconds := l.serverParameters.Int(imageTaskTimeoutKey, 0); seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return l.adapter.cfg.ImageTaskTimeout()
}

// fetchImage waits at most timeout for the host fetcher, even if the fetcher ignores ctx.
func (a *MediationAdapter) fetchImage(url string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := a.clock.WithTimeout(context.Background(), timeout)
	defer cancel()
	start := a.clock.Now()

	type fetchResult struct {
		data []byte
		err  error
	}
	done := make(chan fetchResult, 1)
	go func() {
		data, err := a.sdk.FetchImage(ctx, url)
		done <- fetchResult{data: data, err: err}
	}()

	var result fetchResult
	select {
	case result = <-done:
	case <-ctx.Done():
		result.err = ctx.Err()
	}

	if errors.Is(result.err, context.DeadlineExceeded) {
		result.err = &errortypes.Timeout{
			Message: fmt.Sprintf("icon fetch did not complete within %v", timeout),
		}
	}

	outcome := metrics.ImageFetchSuccess
	switch {
	case errortypes.ReadCode(result.err) == errortypes.TimeoutErrorCode:
		outcome = metrics.ImageFetchTimeout
	case result.err != nil:
		outcome = metrics.ImageFetchFailure
	}
	a.metrics.RecordImageFetch(outcome, a.clock.Since(start))

	return result.data, result.err
}

// handleNativeAdLoaded builds the host ad on the UI thread and reports the load.
func (l *nativeAdListener) handleNativeAdLoaded(ad bm.NativeAd, icon *max.NativeAdImage) {
	a := l.adapter
	a.sdk.RunOnUIThread(func() {
		if !l.active("loaded") {
			return
		}

		maxNativeAd := max.NewNativeAd(max.NativeAd{
			Format:       max.AdFormatNative,
			Title:        ad.Title(),
			Body:         ad.Description(),
			CallToAction: ad.CallToAction(),
			Icon:         icon,
			MediaView:    a.network.NewNativeMediaView(),
			OptionsView:  ad.ProviderView(),
		}, &nativeAdViewBinder{adapter: a})

		a.log("Native ad fully loaded")
		a.metrics.RecordAdLoad(metrics.AdLabels{AdFormat: metrics.AdFormatNative, Outcome: metrics.OutcomeSuccess})
		l.listener.OnNativeAdLoaded(maxNativeAd, nil)
	})
}

func (l *nativeAdListener) OnAdLoadFailed(ad bm.NativeAd, bmError *bm.Error) {
	if !l.active("load failed") {
		return
	}
	maxAdapterError := toMaxError(bmError)
	l.adapter.log("Native ad failed to load with error (%v)", maxAdapterError)
	l.adapter.metrics.RecordAdLoad(metrics.AdLabels{AdFormat: metrics.AdFormatNative, Outcome: metrics.OutcomeFailure})
	l.listener.OnNativeAdLoadFailed(maxAdapterError)
}

func (l *nativeAdListener) OnAdShown(ad bm.NativeAd) {
	l.adapter.log("Native ad shown")
}

func (l *nativeAdListener) OnAdImpression(ad bm.NativeAd) {
	if !l.active("impression") {
		return
	}
	l.adapter.log("Native ad impression")
	l.adapter.metrics.RecordAdShow(metrics.AdLabels{AdFormat: metrics.AdFormatNative, Outcome: metrics.OutcomeSuccess})
	l.listener.OnNativeAdDisplayed(nil)
}

func (l *nativeAdListener) OnAdClicked(ad bm.NativeAd) {
	if !l.active("clicked") {
		return
	}
	l.adapter.log("Native ad clicked")
	l.listener.OnNativeAdClicked()
}

func (l *nativeAdListener) OnAdExpired(ad bm.NativeAd) {
	l.adapter.log("Native ad expired")
}

// nativeAdViewBinder registers the rendered host view with the adapter's native ad. A binder
// registers at most once.
type nativeAdViewBinder struct {
	adapter *MediationAdapter
	once    sync.Once
}

func (b *nativeAdViewBinder) PrepareViewForInteraction(ad *max.NativeAd, view *max.NativeAdView) {
	b.adapter.mu.Lock()
	nativeAd := b.adapter.nativeAd
	b.adapter.mu.Unlock()

	if nativeAd == nil {
		b.adapter.e("Failed to register native ad views: native ad is nil.")
		return
	}

	b.once.Do(func() {
		nativeAd.RegisterView(view.Container, view.IconImageView, ad.MediaView, clickableViews(ad, view))
	})
}

func clickableViews(ad *max.NativeAd, view *max.NativeAdView) []bm.View {
	var clickable []bm.View
	if ad.Title != "" && view.TitleTextView != nil {
		clickable = append(clickable, view.TitleTextView)
	}
	if ad.Body != "" && view.BodyTextView != nil {
		clickable = append(clickable, view.BodyTextView)
	}
	if ad.CallToAction != "" && view.CallToActionButton != nil {
		clickable = append(clickable, view.CallToActionButton)
	}
	if ad.Icon != nil && view.IconImageView != nil {
		clickable = append(clickable, view.IconImageView)
	}
	if ad.MediaView != nil && view.MediaContentViewGroup != nil {
		clickable = append(clickable, view.MediaContentViewGroup)
	}
	return clickable
}

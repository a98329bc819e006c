package bidmachine

import (
	"testing"

	"github.com/prebid/bidmachine-max-adapter/max"
	"github.com/prebid/bidmachine-max-adapter/max/maxtest"
	bm "github.com/prebid/bidmachine-max-adapter/sdk/bidmachine"
	"github.com/prebid/bidmachine-max-adapter/sdk/bidmachine/bidmachinetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func loadInterstitial(t *testing.T, adapter *testAdapter, listener max.InterstitialAdapterListener) *bidmachinetest.InterstitialAd {
	t.Helper()
	interstitialAd := &bidmachinetest.InterstitialAd{}
	interstitialAd.On("SetListener", mock.Anything)
	interstitialAd.On("Load", &bm.InterstitialRequest{BidPayload: "bid-payload"}).Once()
	adapter.network.On("NewInterstitialAd").Return(interstitialAd).Once()

	adapter.LoadInterstitialAd(responseParams("bid-payload", `{}`), listener)

	interstitialAd.AssertExpectations(t)
	require.NotNil(t, interstitialAd.Listener())
	return interstitialAd
}

func TestInterstitialListenerTranslation(t *testing.T) {
	adapter := newTestAdapter(t, max.ConsentDialogStateUnknown)
	listener := &maxtest.InterstitialListener{}
	interstitialAd := loadInterstitial(t, adapter, listener)
	bmListener := interstitialAd.Listener()

	noContent := bm.NewError(bm.ErrorCodeNoContent, "No content")
	showError := bm.NewError(bm.ErrorCodeAlreadyShown, "Already shown")

	listener.On("OnInterstitialAdLoaded").Once()
	listener.On("OnInterstitialAdLoadFailed", toMaxError(noContent)).Once()
	listener.On("OnInterstitialAdDisplayFailed", toMaxError(showError)).Once()
	listener.On("OnInterstitialAdDisplayed").Once()
	listener.On("OnInterstitialAdClicked").Once()
	listener.On("OnInterstitialAdHidden").Once()

	bmListener.OnAdLoaded(interstitialAd)
	bmListener.OnAdLoadFailed(interstitialAd, noContent)
	bmListener.OnAdShown(interstitialAd)
	bmListener.OnAdShowFailed(interstitialAd, showError)
	bmListener.OnAdImpression(interstitialAd)
	bmListener.OnAdClicked(interstitialAd)
	bmListener.OnAdClosed(interstitialAd, true)
	bmListener.OnAdExpired(interstitialAd)

	listener.AssertExpectations(t)
	assert.Equal(t, []string{
		"OnInterstitialAdLoaded",
		"OnInterstitialAdLoadFailed",
		"OnInterstitialAdDisplayFailed",
		"OnInterstitialAdDisplayed",
		"OnInterstitialAdClicked",
		"OnInterstitialAdHidden",
	}, bidmachinetest.CallNames(&listener.Mock))
}

func TestShowInterstitialAd(t *testing.T) {
	testCases := []struct {
		description   string
		expired       bool
		canShow       bool
		expectedError *max.AdapterError
	}{
		{description: "ready", canShow: true},
		{description: "expired", expired: true, canShow: true, expectedError: max.AdExpired},
		{description: "not-ready", canShow: false, expectedError: max.AdDisplayFailed},
	}

	for _, test := range testCases {
		t.Run(test.description, func(t *testing.T) {
			adapter := newTestAdapter(t, max.ConsentDialogStateUnknown)
			listener := &maxtest.InterstitialListener{}
			interstitialAd := loadInterstitial(t, adapter, listener)
			interstitialAd.On("IsExpired").Return(test.expired).Maybe()
			interstitialAd.On("CanShow").Return(test.canShow).Maybe()
			if test.expectedError == nil {
				interstitialAd.On("Show").Once()
			} else {
				listener.On("OnInterstitialAdDisplayFailed", test.expectedError).Once()
			}

			adapter.ShowInterstitialAd(responseParams("", `{}`), listener)

			interstitialAd.AssertExpectations(t)
			listener.AssertExpectations(t)
			if test.expectedError != nil {
				interstitialAd.AssertNotCalled(t, "Show")
			}
		})
	}
}

func TestShowInterstitialAdWithoutLoad(t *testing.T) {
	adapter := newTestAdapter(t, max.ConsentDialogStateUnknown)
	listener := &maxtest.InterstitialListener{}
	listener.On("OnInterstitialAdDisplayFailed", max.AdNotReady).Once()

	adapter.ShowInterstitialAd(responseParams("", `{}`), listener)

	listener.AssertExpectations(t)
}

func TestLoadInterstitialReplacesHandle(t *testing.T) {
	adapter := newTestAdapter(t, max.ConsentDialogStateUnknown)
	first := loadInterstitial(t, adapter, &maxtest.InterstitialListener{})
	second := loadInterstitial(t, adapter, &maxtest.InterstitialListener{})

	adapter.mu.Lock()
	current := adapter.interstitialAd
	adapter.mu.Unlock()

	assert.Same(t, second, current)
	first.AssertNotCalled(t, "Destroy")
}

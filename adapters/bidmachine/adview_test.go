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

func TestToAdSize(t *testing.T) {
	testCases := []struct {
		adFormat     max.AdFormat
		expectedSize bm.BannerSize
		expectedW    int64
		expectedH    int64
	}{
		{adFormat: max.AdFormatBanner, expectedSize: bm.BannerSize320x50, expectedW: 320, expectedH: 50},
		{adFormat: max.AdFormatLeader, expectedSize: bm.BannerSize728x90, expectedW: 728, expectedH: 90},
		{adFormat: max.AdFormatMREC, expectedSize: bm.BannerSize300x250, expectedW: 300, expectedH: 250},
	}

	for _, test := range testCases {
		t.Run(string(test.adFormat), func(t *testing.T) {
			size := toAdSize(test.adFormat)

			assert.Equal(t, test.expectedSize, size)
			assert.Equal(t, test.expectedW, size.Format().W)
			assert.Equal(t, test.expectedH, size.Format().H)
		})
	}
}

func TestToAdSizeInvalidFormat(t *testing.T) {
	for _, adFormat := range []max.AdFormat{max.AdFormatInterstitial, max.AdFormatRewarded, max.AdFormatNative} {
		t.Run(string(adFormat), func(t *testing.T) {
			assert.PanicsWithError(t, "Invalid ad format: "+adFormat.Label(), func() {
				toAdSize(adFormat)
			})
		})
	}
}

func TestLoadAdViewAd(t *testing.T) {
	adapter := newTestAdapter(t, max.ConsentDialogStateUnknown)

	bannerView := &bidmachinetest.BannerView{}
	bannerView.On("SetListener", mock.Anything)
	bannerView.On("Load", &bm.BannerRequest{Size: bm.BannerSize300x250, BidPayload: "bid-payload"}).Once()
	adapter.network.On("NewBannerView").Return(bannerView).Once()

	listener := &maxtest.AdViewListener{}
	adapter.LoadAdViewAd(responseParams("bid-payload", `{}`), max.AdFormatMREC, listener)
	bannerView.AssertExpectations(t)

	bmListener := bannerView.Listener()
	require.NotNil(t, bmListener)

	serverError := bm.NewError(bm.ErrorCodeServer, "Server error")
	listener.On("OnAdViewAdLoaded", bannerView).Once()
	listener.On("OnAdViewAdLoadFailed", toMaxError(serverError)).Once()
	listener.On("OnAdViewAdDisplayed").Once()
	listener.On("OnAdViewAdClicked").Once()

	bmListener.OnAdLoaded(bannerView)
	bmListener.OnAdLoadFailed(bannerView, serverError)
	bmListener.OnAdShown(bannerView)
	bmListener.OnAdImpression(bannerView)
	bmListener.OnAdClicked(bannerView)
	bmListener.OnAdExpired(bannerView)

	listener.AssertExpectations(t)
}

func TestLoadAdViewAdInvalidFormat(t *testing.T) {
	adapter := newTestAdapter(t, max.ConsentDialogStateUnknown)

	assert.Panics(t, func() {
		adapter.LoadAdViewAd(responseParams("bid-payload", `{}`), max.AdFormatNative, &maxtest.AdViewListener{})
	})
	adapter.network.AssertNotCalled(t, "NewBannerView")
}

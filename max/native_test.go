package max

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingBinder struct {
	ads   []*NativeAd
	views []*NativeAdView
}

func (b *recordingBinder) PrepareViewForInteraction(ad *NativeAd, view *NativeAdView) {
	b.ads = append(b.ads, ad)
	b.views = append(b.views, view)
}

func TestNativeAdPrepareViewForInteraction(t *testing.T) {
	binder := &recordingBinder{}
	template := NativeAd{Format: AdFormatNative, Title: "title"}

	ad := NewNativeAd(template, binder)
	view := &NativeAdView{TitleTextView: "title-view"}

	ad.PrepareViewForInteraction(view)
	ad.PrepareViewForInteraction(nil)

	assert.Equal(t, []*NativeAd{ad}, binder.ads)
	assert.Equal(t, []*NativeAdView{view}, binder.views)
	assert.Equal(t, "title", ad.Title)
}

func TestNativeAdWithoutBinder(t *testing.T) {
	ad := NewNativeAd(NativeAd{}, nil)
	assert.NotPanics(t, func() { ad.PrepareViewForInteraction(&NativeAdView{}) })
}

func TestAdFormatLabel(t *testing.T) {
	assert.Equal(t, "banner", AdFormatBanner.Label())
	assert.Equal(t, "mrec", AdFormatMREC.Label())
	assert.Equal(t, "CUSTOM", AdFormat("CUSTOM").Label())
}

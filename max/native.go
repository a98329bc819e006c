package max

// View is an opaque host UI element.
type View any

// NativeAdImage is an icon or main image, either decoded in memory or addressable by URI.
type NativeAdImage struct {
	Drawable []byte
	URI      string
}

// NativeAdView is the host template a native ad is rendered into. Any element may be nil when
// the template has no slot for it.
type NativeAdView struct {
	Container             View
	TitleTextView         View
	BodyTextView          View
	CallToActionButton    View
	IconImageView         View
	MediaContentViewGroup View
}

// ViewBinder connects a network's impression and click tracking to a rendered NativeAdView.
type ViewBinder interface {
	PrepareViewForInteraction(ad *NativeAd, view *NativeAdView)
}

// NativeAd is the host representation of a loaded native ad.
type NativeAd struct {
	Format       AdFormat
	Title        string
	Body         string
	CallToAction string
	Icon         *NativeAdImage
	MediaView    View
	OptionsView  View

	binder ViewBinder
}

// NewNativeAd returns a copy of template bound to binder.
func NewNativeAd(template NativeAd, binder ViewBinder) *NativeAd {
	ad := template
	ad.binder = binder
	return &ad
}

// PrepareViewForInteraction is called by the host once the ad has been rendered into view.
func (ad *NativeAd) PrepareViewForInteraction(view *NativeAdView) {
	if ad.binder == nil || view == nil {
		return
	}
	ad.binder.PrepareViewForInteraction(ad, view)
}

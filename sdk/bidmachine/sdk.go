// Package bidmachine describes the surface of the BidMachine SDK that the mediation adapter
// drives. Implementations are provided by the SDK bindings of the embedding application.
package bidmachine

// View is an opaque UI element owned by the SDK or the host.
type View any

// InitializationCallback is invoked once the SDK finished initializing.
type InitializationCallback func()

// SDK holds the process wide BidMachine entry points.
type SDK interface {
	Version() string

	SetLoggingEnabled(enabled bool)
	SetTestMode(testMode bool)
	SetCoppa(coppa bool)
	SetSubjectToGDPR(subject bool)
	// SetConsentConfig records user consent and, if non-empty, the TCF consent string.
	SetConsentConfig(hasConsent bool, consentString string)

	Initialize(sourceID string, callback InitializationCallback)

	// BidToken blocks while the token is generated and must not run on the UI thread.
	BidToken() string

	NewInterstitialAd() InterstitialAd
	NewRewardedAd() RewardedAd
	NewBannerView() BannerView
	NewNativeAd() NativeAd
	NewNativeMediaView() View
}

// ImageData is a native image asset in whichever form the SDK already holds it.
type ImageData struct {
	Image     []byte
	LocalURI  string
	RemoteURL string
}

type InterstitialAd interface {
	SetListener(listener InterstitialListener)
	Load(request *InterstitialRequest)
	Show()
	IsExpired() bool
	CanShow() bool
	Destroy()
}

type RewardedAd interface {
	SetListener(listener RewardedListener)
	Load(request *RewardedRequest)
	Show()
	IsExpired() bool
	CanShow() bool
	Destroy()
}

// BannerView is itself the view the host attaches to its layout.
type BannerView interface {
	SetListener(listener BannerListener)
	Load(request *BannerRequest)
	Destroy()
}

type NativeAd interface {
	SetListener(listener NativeListener)
	Load(request *NativeRequest)
	Title() string
	Description() string
	CallToAction() string
	Icon() *ImageData
	ProviderView() View
	// RegisterView starts impression and click tracking on container.
	RegisterView(container View, iconView View, mediaView View, clickableViews []View)
	UnregisterView()
	Destroy()
}

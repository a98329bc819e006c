package max

// InterstitialAdapterListener receives interstitial lifecycle events from an adapter.
type InterstitialAdapterListener interface {
	OnInterstitialAdLoaded()
	OnInterstitialAdLoadFailed(err *AdapterError)
	OnInterstitialAdDisplayed()
	OnInterstitialAdDisplayFailed(err *AdapterError)
	OnInterstitialAdClicked()
	OnInterstitialAdHidden()
}

// RewardedAdapterListener receives rewarded lifecycle events from an adapter.
type RewardedAdapterListener interface {
	OnRewardedAdLoaded()
	OnRewardedAdLoadFailed(err *AdapterError)
	OnRewardedAdDisplayed()
	OnRewardedAdDisplayFailed(err *AdapterError)
	OnRewardedAdClicked()
	OnRewardedAdHidden()
	OnRewardedAdVideoStarted()
	OnRewardedAdVideoCompleted()
	OnUserRewarded(reward Reward)
}

// AdViewAdapterListener receives banner, leader and MREC lifecycle events from an adapter.
type AdViewAdapterListener interface {
	OnAdViewAdLoaded(adView View)
	OnAdViewAdLoadFailed(err *AdapterError)
	OnAdViewAdDisplayed()
	OnAdViewAdClicked()
}

// NativeAdAdapterListener receives native lifecycle events from an adapter.
type NativeAdAdapterListener interface {
	OnNativeAdLoaded(ad *NativeAd, extraInfo Bundle)
	OnNativeAdLoadFailed(err *AdapterError)
	OnNativeAdDisplayed(extraInfo Bundle)
	OnNativeAdClicked()
}

// SignalCollectionListener receives the outcome of a bidding signal collection.
type SignalCollectionListener interface {
	OnSignalCollected(signal string)
	OnSignalCollectionFailed(message string)
}

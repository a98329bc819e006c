package bidmachine

type InterstitialListener interface {
	OnAdLoaded(ad InterstitialAd)
	OnAdLoadFailed(ad InterstitialAd, err *Error)
	OnAdShown(ad InterstitialAd)
	OnAdShowFailed(ad InterstitialAd, err *Error)
	OnAdImpression(ad InterstitialAd)
	OnAdClicked(ad InterstitialAd)
	OnAdClosed(ad InterstitialAd, finished bool)
	OnAdExpired(ad InterstitialAd)
}

type RewardedListener interface {
	OnAdLoaded(ad RewardedAd)
	OnAdLoadFailed(ad RewardedAd, err *Error)
	OnAdShown(ad RewardedAd)
	OnAdShowFailed(ad RewardedAd, err *Error)
	OnAdImpression(ad RewardedAd)
	OnAdClicked(ad RewardedAd)
	OnAdRewarded(ad RewardedAd)
	OnAdClosed(ad RewardedAd, finished bool)
	OnAdExpired(ad RewardedAd)
}

type BannerListener interface {
	OnAdLoaded(view BannerView)
	OnAdLoadFailed(view BannerView, err *Error)
	OnAdShown(view BannerView)
	OnAdImpression(view BannerView)
	OnAdClicked(view BannerView)
	OnAdExpired(view BannerView)
}

type NativeListener interface {
	OnAdLoaded(ad NativeAd)
	OnAdLoadFailed(ad NativeAd, err *Error)
	OnAdShown(ad NativeAd)
	OnAdImpression(ad NativeAd)
	OnAdClicked(ad NativeAd)
	OnAdExpired(ad NativeAd)
}

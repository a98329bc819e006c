package bidmachine

import (
	"sync/atomic"

	"github.com/prebid/bidmachine-max-adapter/max"
	"github.com/prebid/bidmachine-max-adapter/metrics"
	bm "github.com/prebid/bidmachine-max-adapter/sdk/bidmachine"
)

func (a *MediationAdapter) LoadRewardedAd(params *max.ResponseParameters, listener max.RewardedAdapterListener) {
	a.log("Loading rewarded ad...")

	a.updateSettings(&params.AdapterParameters)

	rewardedAd := a.network.NewRewardedAd()
	adListener := &rewardedAdListener{
		listenerBase: listenerBase{adapter: a},
		listener:     listener,
	}

	a.mu.Lock()
	a.rewardedAd = rewardedAd
	a.rewardedListener = adListener
	a.mu.Unlock()

	rewardedAd.SetListener(adListener)
	a.metrics.RecordAdLoad(metrics.AdLabels{AdFormat: metrics.AdFormatRewarded, Outcome: metrics.OutcomeRequested})
	rewardedAd.Load(&bm.RewardedRequest{
		BidPayload: params.BidResponse,
	})
}

func (a *MediationAdapter) ShowRewardedAd(params *max.ResponseParameters, listener max.RewardedAdapterListener) {
	a.log("Showing rewarded ad...")

	a.mu.Lock()
	rewardedAd := a.rewardedAd
	a.mu.Unlock()

	var ad showable
	if rewardedAd != nil {
		ad = rewardedAd
	}
	if err := a.showPrecondition(ad, "rewarded ad"); err != nil {
		a.metrics.RecordAdShow(metrics.AdLabels{AdFormat: metrics.AdFormatRewarded, Outcome: metrics.OutcomeRejected})
		listener.OnRewardedAdDisplayFailed(err)
		return
	}

	a.configureReward(params)
	a.metrics.RecordAdShow(metrics.AdLabels{AdFormat: metrics.AdFormatRewarded, Outcome: metrics.OutcomeRequested})
	rewardedAd.Show()
}

// configureReward captures the reward and grant policy of the ad about to be shown.
func (a *MediationAdapter) configureReward(params *max.ResponseParameters) {
	reward := max.RewardFromServerParameters(params.ServerParameters)
	alwaysRewardUser := params.AlwaysRewardUser ||
		params.ServerParameters.Bool(alwaysRewardUserKey, a.cfg.AlwaysRewardUser)

	a.mu.Lock()
	a.reward = reward
	a.alwaysRewardUser = alwaysRewardUser
	a.mu.Unlock()

	a.log("Creating reward: %v", reward)
}

func (a *MediationAdapter) currentReward() (max.Reward, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reward, a.alwaysRewardUser
}

type rewardedAdListener struct {
	listenerBase
	listener         max.RewardedAdapterListener
	hasGrantedReward atomic.Bool
}

func (l *rewardedAdListener) OnAdLoaded(ad bm.RewardedAd) {
	if !l.active("loaded") {
		return
	}
	l.adapter.log("Rewarded ad loaded")
	l.adapter.metrics.RecordAdLoad(metrics.AdLabels{AdFormat: metrics.AdFormatRewarded, Outcome: metrics.OutcomeSuccess})
	l.listener.OnRewardedAdLoaded()
}

func (l *rewardedAdListener) OnAdLoadFailed(ad bm.RewardedAd, bmError *bm.Error) {
	if !l.active("load failed") {
		return
	}
	maxAdapterError := toMaxError(bmError)
	l.adapter.log("Rewarded ad failed to load with error (%v)", maxAdapterError)
	l.adapter.metrics.RecordAdLoad(metrics.AdLabels{AdFormat: metrics.AdFormatRewarded, Outcome: metrics.OutcomeFailure})
	l.listener.OnRewardedAdLoadFailed(maxAdapterError)
}

func (l *rewardedAdListener) OnAdShown(ad bm.RewardedAd) {
	if !l.active("shown") {
		return
	}
	l.adapter.log("Rewarded ad shown")
	l.listener.OnRewardedAdVideoStarted()
}

func (l *rewardedAdListener) OnAdShowFailed(ad bm.RewardedAd, bmError *bm.Error) {
	if !l.active("show failed") {
		return
	}
	maxAdapterError := toMaxError(bmError)
	l.adapter.log("Rewarded ad failed to show with error (%v)", maxAdapterError)
	l.adapter.metrics.RecordAdShow(metrics.AdLabels{AdFormat: metrics.AdFormatRewarded, Outcome: metrics.OutcomeFailure})
	l.listener.OnRewardedAdDisplayFailed(maxAdapterError)
}

func (l *rewardedAdListener) OnAdImpression(ad bm.RewardedAd) {
	if !l.active("impression") {
		return
	}
	l.adapter.log("Rewarded ad impression")
	l.adapter.metrics.RecordAdShow(metrics.AdLabels{AdFormat: metrics.AdFormatRewarded, Outcome: metrics.OutcomeSuccess})
	l.listener.OnRewardedAdDisplayed()
}

func (l *rewardedAdListener) OnAdClicked(ad bm.RewardedAd) {
	if !l.active("clicked") {
		return
	}
	l.adapter.log("Rewarded ad clicked")
	l.listener.OnRewardedAdClicked()
}

func (l *rewardedAdListener) OnAdRewarded(ad bm.RewardedAd) {
	l.adapter.log("Rewarded ad should grant reward")
	l.hasGrantedReward.Store(true)
}

func (l *rewardedAdListener) OnAdClosed(ad bm.RewardedAd, finished bool) {
	if !l.active("closed") {
		return
	}
	l.adapter.log("Rewarded ad closed")
	l.listener.OnRewardedAdVideoCompleted()

	reward, alwaysRewardUser := l.adapter.currentReward()
	granted := l.hasGrantedReward.Load() || alwaysRewardUser
	l.adapter.metrics.RecordReward(granted)
	if granted {
		l.adapter.log("Rewarded user with reward: %v", reward)
		l.listener.OnUserRewarded(reward)
	}

	l.listener.OnRewardedAdHidden()
}

func (l *rewardedAdListener) OnAdExpired(ad bm.RewardedAd) {
	l.adapter.log("Rewarded ad expired")
}

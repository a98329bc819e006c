// Package maxtest provides testify mocks of the host mediation SDK and its listeners.
package maxtest

import (
	"context"
	"sync/atomic"

	"github.com/prebid/bidmachine-max-adapter/max"
	"github.com/stretchr/testify/mock"
)

// SDK is a mock host SDK. RunOnUIThread executes inline so tests observe its effects at once.
type SDK struct {
	mock.Mock
	uiCalls atomic.Int32
}

func (s *SDK) ConsentDialogState() max.ConsentDialogState {
	args := s.Called()
	return args.Get(0).(max.ConsentDialogState)
}

func (s *SDK) RunOnUIThread(fn func()) {
	s.uiCalls.Add(1)
	fn()
}

// UICalls returns how many times RunOnUIThread was used.
func (s *SDK) UICalls() int {
	return int(s.uiCalls.Load())
}

func (s *SDK) FetchImage(ctx context.Context, url string) ([]byte, error) {
	args := s.Called(ctx, url)
	image, _ := args.Get(0).([]byte)
	return image, args.Error(1)
}

type InterstitialListener struct {
	mock.Mock
}

func (l *InterstitialListener) OnInterstitialAdLoaded() {
	l.Called()
}

func (l *InterstitialListener) OnInterstitialAdLoadFailed(err *max.AdapterError) {
	l.Called(err)
}

func (l *InterstitialListener) OnInterstitialAdDisplayed() {
	l.Called()
}

func (l *InterstitialListener) OnInterstitialAdDisplayFailed(err *max.AdapterError) {
	l.Called(err)
}

func (l *InterstitialListener) OnInterstitialAdClicked() {
	l.Called()
}

func (l *InterstitialListener) OnInterstitialAdHidden() {
	l.Called()
}

type RewardedListener struct {
	mock.Mock
}

func (l *RewardedListener) OnRewardedAdLoaded() {
	l.Called()
}

func (l *RewardedListener) OnRewardedAdLoadFailed(err *max.AdapterError) {
	l.Called(err)
}

func (l *RewardedListener) OnRewardedAdDisplayed() {
	l.Called()
}

func (l *RewardedListener) OnRewardedAdDisplayFailed(err *max.AdapterError) {
	l.Called(err)
}

func (l *RewardedListener) OnRewardedAdClicked() {
	l.Called()
}

func (l *RewardedListener) OnRewardedAdHidden() {
	l.Called()
}

func (l *RewardedListener) OnRewardedAdVideoStarted() {
	l.Called()
}

func (l *RewardedListener) OnRewardedAdVideoCompleted() {
	l.Called()
}

func (l *RewardedListener) OnUserRewarded(reward max.Reward) {
	l.Called(reward)
}

type AdViewListener struct {
	mock.Mock
}

func (l *AdViewListener) OnAdViewAdLoaded(adView max.View) {
	l.Called(adView)
}

func (l *AdViewListener) OnAdViewAdLoadFailed(err *max.AdapterError) {
	l.Called(err)
}

func (l *AdViewListener) OnAdViewAdDisplayed() {
	l.Called()
}

func (l *AdViewListener) OnAdViewAdClicked() {
	l.Called()
}

type NativeListener struct {
	mock.Mock
}

func (l *NativeListener) OnNativeAdLoaded(ad *max.NativeAd, extraInfo max.Bundle) {
	l.Called(ad, extraInfo)
}

func (l *NativeListener) OnNativeAdLoadFailed(err *max.AdapterError) {
	l.Called(err)
}

func (l *NativeListener) OnNativeAdDisplayed(extraInfo max.Bundle) {
	l.Called(extraInfo)
}

func (l *NativeListener) OnNativeAdClicked() {
	l.Called()
}

type SignalListener struct {
	mock.Mock
}

func (l *SignalListener) OnSignalCollected(signal string) {
	l.Called(signal)
}

func (l *SignalListener) OnSignalCollectionFailed(message string) {
	l.Called(message)
}

// Package bidmachinetest provides testify mocks of the BidMachine SDK surface.
//
// Ad mocks remember the listener most recently set so tests can play SDK callbacks against it.
package bidmachinetest

import (
	"sync"

	"github.com/prebid/bidmachine-max-adapter/sdk/bidmachine"
	"github.com/stretchr/testify/mock"
)

type SDK struct {
	mock.Mock
}

func (s *SDK) Version() string {
	return s.Called().String(0)
}

func (s *SDK) SetLoggingEnabled(enabled bool) {
	s.Called(enabled)
}

func (s *SDK) SetTestMode(testMode bool) {
	s.Called(testMode)
}

func (s *SDK) SetCoppa(coppa bool) {
	s.Called(coppa)
}

func (s *SDK) SetSubjectToGDPR(subject bool) {
	s.Called(subject)
}

func (s *SDK) SetConsentConfig(hasConsent bool, consentString string) {
	s.Called(hasConsent, consentString)
}

func (s *SDK) Initialize(sourceID string, callback bidmachine.InitializationCallback) {
	s.Called(sourceID, callback)
}

func (s *SDK) BidToken() string {
	return s.Called().String(0)
}

func (s *SDK) NewInterstitialAd() bidmachine.InterstitialAd {
	return s.Called().Get(0).(bidmachine.InterstitialAd)
}

func (s *SDK) NewRewardedAd() bidmachine.RewardedAd {
	return s.Called().Get(0).(bidmachine.RewardedAd)
}

func (s *SDK) NewBannerView() bidmachine.BannerView {
	return s.Called().Get(0).(bidmachine.BannerView)
}

func (s *SDK) NewNativeAd() bidmachine.NativeAd {
	return s.Called().Get(0).(bidmachine.NativeAd)
}

func (s *SDK) NewNativeMediaView() bidmachine.View {
	return s.Called().Get(0)
}

type listenerHolder[T any] struct {
	mu       sync.Mutex
	listener T
}

func (h *listenerHolder[T]) set(l T) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listener = l
}

// Listener returns the listener most recently passed to SetListener.
func (h *listenerHolder[T]) Listener() T {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.listener
}

type InterstitialAd struct {
	mock.Mock
	listenerHolder[bidmachine.InterstitialListener]
}

func (a *InterstitialAd) SetListener(listener bidmachine.InterstitialListener) {
	a.Called(listener)
	a.set(listener)
}

func (a *InterstitialAd) Load(request *bidmachine.InterstitialRequest) {
	a.Called(request)
}

func (a *InterstitialAd) Show() {
	a.Called()
}

func (a *InterstitialAd) IsExpired() bool {
	return a.Called().Bool(0)
}

func (a *InterstitialAd) CanShow() bool {
	return a.Called().Bool(0)
}

func (a *InterstitialAd) Destroy() {
	a.Called()
}

type RewardedAd struct {
	mock.Mock
	listenerHolder[bidmachine.RewardedListener]
}

func (a *RewardedAd) SetListener(listener bidmachine.RewardedListener) {
	a.Called(listener)
	a.set(listener)
}

func (a *RewardedAd) Load(request *bidmachine.RewardedRequest) {
	a.Called(request)
}

func (a *RewardedAd) Show() {
	a.Called()
}

func (a *RewardedAd) IsExpired() bool {
	return a.Called().Bool(0)
}

func (a *RewardedAd) CanShow() bool {
	return a.Called().Bool(0)
}

func (a *RewardedAd) Destroy() {
	a.Called()
}

type BannerView struct {
	mock.Mock
	listenerHolder[bidmachine.BannerListener]
}

func (v *BannerView) SetListener(listener bidmachine.BannerListener) {
	v.Called(listener)
	v.set(listener)
}

func (v *BannerView) Load(request *bidmachine.BannerRequest) {
	v.Called(request)
}

func (v *BannerView) Destroy() {
	v.Called()
}

type NativeAd struct {
	mock.Mock
	listenerHolder[bidmachine.NativeListener]
}

func (a *NativeAd) SetListener(listener bidmachine.NativeListener) {
	a.Called(listener)
	a.set(listener)
}

func (a *NativeAd) Load(request *bidmachine.NativeRequest) {
	a.Called(request)
}

func (a *NativeAd) Title() string {
	return a.Called().String(0)
}

func (a *NativeAd) Description() string {
	return a.Called().String(0)
}

func (a *NativeAd) CallToAction() string {
	return a.Called().String(0)
}

func (a *NativeAd) Icon() *bidmachine.ImageData {
	icon, _ := a.Called().Get(0).(*bidmachine.ImageData)
	return icon
}

func (a *NativeAd) ProviderView() bidmachine.View {
	return a.Called().Get(0)
}

func (a *NativeAd) RegisterView(container bidmachine.View, iconView bidmachine.View, mediaView bidmachine.View, clickableViews []bidmachine.View) {
	a.Called(container, iconView, mediaView, clickableViews)
}

func (a *NativeAd) UnregisterView() {
	a.Called()
}

func (a *NativeAd) Destroy() {
	a.Called()
}

// CallNames lists the mocked methods in the order they were invoked.
func CallNames(m *mock.Mock) []string {
	names := make([]string, 0, len(m.Calls))
	for _, call := range m.Calls {
		names = append(names, call.Method)
	}
	return names
}

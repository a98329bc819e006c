package metrics

import (
	"time"
)

// AdFormat labels metrics by the kind of ad the operation served.
type AdFormat string

const (
	AdFormatInterstitial AdFormat = "interstitial"
	AdFormatRewarded     AdFormat = "rewarded"
	AdFormatAdView       AdFormat = "adview"
	AdFormatNative       AdFormat = "native"
)

// AdFormats returns all possible values for AdFormat.
func AdFormats() []AdFormat {
	return []AdFormat{
		AdFormatInterstitial,
		AdFormatRewarded,
		AdFormatAdView,
		AdFormatNative,
	}
}

// Outcome is how a load or show ended.
type Outcome string

const (
	// OutcomeRequested counts calls the adapter handed to the network SDK.
	OutcomeRequested Outcome = "requested"
	OutcomeSuccess   Outcome = "success"
	OutcomeFailure   Outcome = "failure"
	// OutcomeRejected counts shows refused before reaching the network SDK.
	OutcomeRejected Outcome = "rejected"
)

// Outcomes returns all possible values for Outcome.
func Outcomes() []Outcome {
	return []Outcome{
		OutcomeRequested,
		OutcomeSuccess,
		OutcomeFailure,
		OutcomeRejected,
	}
}

// InitStatus is what an Initialize call did.
type InitStatus string

const (
	InitStatusStarted     InitStatus = "started"
	InitStatusSucceeded   InitStatus = "succeeded"
	InitStatusFailed      InitStatus = "failed"
	InitStatusAlreadyDone InitStatus = "already_done"
)

// InitStatuses returns all possible values for InitStatus.
func InitStatuses() []InitStatus {
	return []InitStatus{
		InitStatusStarted,
		InitStatusSucceeded,
		InitStatusFailed,
		InitStatusAlreadyDone,
	}
}

// ImageFetchOutcome is how a native icon download ended.
type ImageFetchOutcome string

const (
	ImageFetchSuccess ImageFetchOutcome = "success"
	ImageFetchTimeout ImageFetchOutcome = "timeout"
	ImageFetchFailure ImageFetchOutcome = "failure"
)

// ImageFetchOutcomes returns all possible values for ImageFetchOutcome.
func ImageFetchOutcomes() []ImageFetchOutcome {
	return []ImageFetchOutcome{
		ImageFetchSuccess,
		ImageFetchTimeout,
		ImageFetchFailure,
	}
}

// AdLabels defines the labels attached to load and show metrics.
type AdLabels struct {
	AdFormat AdFormat
	Outcome  Outcome
}

// MetricsEngine is a generic interface to record adapter metrics into the desired backend.
type MetricsEngine interface {
	RecordInitialization(status InitStatus)
	RecordSignalCollection(success bool)
	RecordAdLoad(labels AdLabels)
	RecordAdShow(labels AdLabels)
	RecordReward(granted bool)
	RecordImageFetch(outcome ImageFetchOutcome, length time.Duration)
}

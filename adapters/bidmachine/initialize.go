package bidmachine

import (
	"sync"

	"github.com/prebid/bidmachine-max-adapter/max"
	"github.com/prebid/bidmachine-max-adapter/metrics"
)

// Initialize starts the BidMachine SDK once per process. Every later call, from this or any
// other adapter instance, completes immediately with the recorded status.
func (a *MediationAdapter) Initialize(params *max.InitializationParameters, onCompletion max.OnCompletion) {
	if !a.initState.tryBeginInit() {
		a.log("BidMachine SDK is already initialized")
		a.metrics.RecordInitialization(metrics.InitStatusAlreadyDone)
		onCompletion(a.initState.status(), "")
		return
	}

	sourceID := params.CustomParameters.String(sourceIDKey, "")
	if sourceID == "" {
		a.e("Unable to initialize BidMachine SDK: missing %s", sourceIDKey)
		a.initState.markFailure()
		a.metrics.RecordInitialization(metrics.InitStatusFailed)
		onCompletion(a.initState.status(), "missing "+sourceIDKey)
		return
	}

	a.log("Initializing BidMachine SDK with source id: %s", sourceID)
	a.metrics.RecordInitialization(metrics.InitStatusStarted)

	a.network.SetLoggingEnabled(params.IsTesting)
	a.network.SetTestMode(params.IsTesting)

	a.updateSettings(&params.AdapterParameters)

	var once sync.Once
	a.network.Initialize(sourceID, func() {
		once.Do(func() {
			a.log("BidMachine SDK successfully finished initialization with source id: %s", sourceID)
			a.initState.markSuccess()
			a.metrics.RecordInitialization(metrics.InitStatusSucceeded)
			onCompletion(a.initState.status(), "")
		})
	})
}

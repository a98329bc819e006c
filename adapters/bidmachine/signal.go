package bidmachine

import (
	"github.com/prebid/bidmachine-max-adapter/max"
)

// CollectSignal generates a bid token. BidToken blocks, so the host must call this off the UI thread.
func (a *MediationAdapter) CollectSignal(params *max.SignalCollectionParameters, callback max.SignalCollectionListener) {
	a.log("Collecting signal...")

	a.updateSettings(&params.AdapterParameters)

	bidToken := a.network.BidToken()
	if bidToken == "" {
		a.e("Signal collection failed: empty bid token")
		a.metrics.RecordSignalCollection(false)
		callback.OnSignalCollectionFailed("BidMachine returned an empty bid token")
		return
	}

	a.metrics.RecordSignalCollection(true)
	callback.OnSignalCollected(bidToken)
}

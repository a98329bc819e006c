package bidmachine

import (
	"github.com/prebid/bidmachine-max-adapter/max"
	bm "github.com/prebid/bidmachine-max-adapter/sdk/bidmachine"
)

// toMaxError normalizes a BidMachine error into a host error, keeping the original code and
// message for diagnostics.
func toMaxError(bidMachineError *bm.Error) *max.AdapterError {
	if bidMachineError == nil {
		return max.NewThirdPartyAdapterError(max.Unspecified.Code(), max.Unspecified.Message(), 0, "")
	}

	maxAdapterError := max.Unspecified
	switch bidMachineError.Code() {
	case bm.ErrorCodeNoConnection:
		maxAdapterError = max.NoConnection
	case bm.ErrorCodeTimeout:
		maxAdapterError = max.Timeout
	case bm.ErrorCodeHTTPBadRequest:
		maxAdapterError = max.BadRequest
	case bm.ErrorCodeServer:
		maxAdapterError = max.ServerError
	case bm.ErrorCodeNoContent, bm.ErrorCodeBadContent:
		maxAdapterError = max.NoFill
	case bm.ErrorCodeExpired:
		maxAdapterError = max.AdExpired
	case bm.ErrorCodeInternal:
		maxAdapterError = max.InternalError
	}

	return max.NewThirdPartyAdapterError(maxAdapterError.Code(),
		maxAdapterError.Message(),
		bidMachineError.Code(),
		bidMachineError.Message())
}

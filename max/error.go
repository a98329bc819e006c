package max

import (
	"fmt"

	"github.com/prebid/bidmachine-max-adapter/errortypes"
)

// Host error codes.
const (
	ErrorCodeNoFill                = 204
	ErrorCodeUnspecified           = -5200
	ErrorCodeInvalidConfiguration  = -5201
	ErrorCodeTimeout               = -5202
	ErrorCodeBadRequest            = -5203
	ErrorCodeNotInitialized        = -5204
	ErrorCodeAdNotReady            = -5205
	ErrorCodeNoConnection          = -5207
	ErrorCodeServerError           = -5208
	ErrorCodeInternalError         = -5209
	ErrorCodeAdExpired             = -5210
	ErrorCodeAdDisplayFailed       = -4205
	ErrorCodeMissingNativeAdAssets = -5400
)

// AdapterError is the typed result handed to host listeners when an operation fails. It keeps
// the normalized host code next to the third party code and message it was derived from.
type AdapterError struct {
	code              int
	message           string
	thirdPartyCode    int
	thirdPartyMessage string
}

var (
	NoFill                = NewAdapterError(ErrorCodeNoFill, "No Fill")
	Unspecified           = NewAdapterError(ErrorCodeUnspecified, "Unspecified Error")
	Timeout               = NewAdapterError(ErrorCodeTimeout, "Timeout")
	BadRequest            = NewAdapterError(ErrorCodeBadRequest, "Bad Request")
	AdNotReady            = NewAdapterError(ErrorCodeAdNotReady, "Ad Not Ready")
	NoConnection          = NewAdapterError(ErrorCodeNoConnection, "No Connection")
	ServerError           = NewAdapterError(ErrorCodeServerError, "Server Error")
	InternalError         = NewAdapterError(ErrorCodeInternalError, "Internal Error")
	AdExpired             = NewAdapterError(ErrorCodeAdExpired, "Ad Expired")
	AdDisplayFailed       = NewAdapterError(ErrorCodeAdDisplayFailed, "Ad Display Failed")
	MissingNativeAdAssets = NewAdapterError(ErrorCodeMissingNativeAdAssets, "Missing Native Ad Assets")
)

func NewAdapterError(code int, message string) *AdapterError {
	return &AdapterError{code: code, message: message}
}

// NewThirdPartyAdapterError builds an error which also carries the network's own diagnostics.
func NewThirdPartyAdapterError(code int, message string, thirdPartyCode int, thirdPartyMessage string) *AdapterError {
	return &AdapterError{
		code:              code,
		message:           message,
		thirdPartyCode:    thirdPartyCode,
		thirdPartyMessage: thirdPartyMessage,
	}
}

func (e *AdapterError) Code() int {
	return e.code
}

func (e *AdapterError) Message() string {
	return e.message
}

func (e *AdapterError) ThirdPartyCode() int {
	return e.thirdPartyCode
}

func (e *AdapterError) ThirdPartyMessage() string {
	return e.thirdPartyMessage
}

// Severity lets host errors flow through the same classification as adapter errors. A no fill
// is an expected outcome of an auction, everything else ends the operation.
func (e *AdapterError) Severity() errortypes.Severity {
	if e.code == ErrorCodeNoFill {
		return errortypes.SeverityWarning
	}
	return errortypes.SeverityFatal
}

func (e *AdapterError) Error() string {
	if e.thirdPartyCode == 0 && e.thirdPartyMessage == "" {
		return fmt.Sprintf("MaxAdapterError{code=%d, message=%q}", e.code, e.message)
	}
	return fmt.Sprintf("MaxAdapterError{code=%d, message=%q, thirdPartyCode=%d, thirdPartyMessage=%q}",
		e.code, e.message, e.thirdPartyCode, e.thirdPartyMessage)
}

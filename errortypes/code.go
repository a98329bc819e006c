package errortypes

import "errors"

// Defines numeric codes for well-known errors.
const (
	UnknownErrorCode = 999
	TimeoutErrorCode = iota
	BadInputErrorCode
	BadServerResponseErrorCode
	InvalidAdFormatErrorCode
	FailedToFetchImageErrorCode
)

// Defines numeric codes for well-known warnings.
const (
	UnknownWarningCode          = 10999
	MalformedConsentWarningCode = iota + 10000
	MissingIconImageWarningCode
)

// Coder provides an error or warning code with severity.
type Coder interface {
	Code() int
	Severity() Severity
}

// ReadCode returns the error or warning code, or UnknownErrorCode if unavailable.
func ReadCode(err error) int {
	var c Coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return UnknownErrorCode
}

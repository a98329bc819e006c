package errortypes

// Timeout should be used to flag that a background task, such as a native icon fetch, did not
// complete before its deadline.
type Timeout struct {
	Message string
}

func (err *Timeout) Error() string {
	return err.Message
}

func (err *Timeout) Code() int {
	return TimeoutErrorCode
}

func (err *Timeout) Severity() Severity {
	return SeverityFatal
}

// BadInput should be used when the host supplied parameters which cannot be used as given.
type BadInput struct {
	Message string
}

func (err *BadInput) Error() string {
	return err.Message
}

func (err *BadInput) Code() int {
	return BadInputErrorCode
}

func (err *BadInput) Severity() Severity {
	return SeverityFatal
}

// BadServerResponse should be used when a remote server, such as an image host, responded with
// an unexpected status or body.
type BadServerResponse struct {
	Message string
}

func (err *BadServerResponse) Error() string {
	return err.Message
}

func (err *BadServerResponse) Code() int {
	return BadServerResponseErrorCode
}

func (err *BadServerResponse) Severity() Severity {
	return SeverityFatal
}

// InvalidAdFormat flags an ad format which the adapter has no mapping for. It is a
// configuration error and is raised with panic rather than reported to a listener.
type InvalidAdFormat struct {
	Message string
}

func (err *InvalidAdFormat) Error() string {
	return err.Message
}

func (err *InvalidAdFormat) Code() int {
	return InvalidAdFormatErrorCode
}

func (err *InvalidAdFormat) Severity() Severity {
	return SeverityFatal
}

// FailedToFetchImage wraps a transport failure while downloading a native ad asset.
type FailedToFetchImage struct {
	Message string
}

func (err *FailedToFetchImage) Error() string {
	return err.Message
}

func (err *FailedToFetchImage) Code() int {
	return FailedToFetchImageErrorCode
}

func (err *FailedToFetchImage) Severity() Severity {
	return SeverityFatal
}

// Warning is a generic non-fatal error.
type Warning struct {
	Message     string
	WarningCode int
}

func (err *Warning) Error() string {
	return err.Message
}

func (err *Warning) Code() int {
	return err.WarningCode
}

func (err *Warning) Severity() Severity {
	return SeverityWarning
}

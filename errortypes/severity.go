package errortypes

import "errors"

// Severity represents the severity level of an adapter error.
type Severity int

const (
	// SeverityUnknown represents an unknown severity level.
	SeverityUnknown Severity = iota

	// SeverityFatal represents an error which ends the ad operation it occurred in.
	SeverityFatal

	// SeverityWarning represents a non-fatal error where the operation continued in a
	// degraded form.
	SeverityWarning
)

func isFatal(err error) bool {
	var s Coder
	return !errors.As(err, &s) || s.Severity() == SeverityFatal
}

// IsWarning returns true if an error is labeled with a Severity of SeverityWarning
func IsWarning(err error) bool {
	var s Coder
	return errors.As(err, &s) && s.Severity() == SeverityWarning
}

// ContainsFatalError checks if the error list contains a fatal error.
func ContainsFatalError(errors []error) bool {
	for _, err := range errors {
		if isFatal(err) {
			return true
		}
	}

	return false
}

// WarningOnly returns a new error list with only the warning severity errors.
func WarningOnly(errs []error) []error {
	errsWarning := make([]error, 0, len(errs))

	for _, err := range errs {
		if IsWarning(err) {
			errsWarning = append(errsWarning, err)
		}
	}

	return errsWarning
}

package max

import "context"

// InitializationStatus is the state an adapter reports back from Initialize.
type InitializationStatus int

const (
	InitializationStatusUninitialized InitializationStatus = iota
	InitializationStatusInitializing
	InitializationStatusInitializedSuccess
	InitializationStatusInitializedFailure
)

func (s InitializationStatus) String() string {
	switch s {
	case InitializationStatusUninitialized:
		return "UNINITIALIZED"
	case InitializationStatusInitializing:
		return "INITIALIZING"
	case InitializationStatusInitializedSuccess:
		return "INITIALIZED_SUCCESS"
	case InitializationStatusInitializedFailure:
		return "INITIALIZED_FAILURE"
	}
	return "UNKNOWN"
}

// OnCompletion is called once an adapter finished (or already had finished) initializing.
type OnCompletion func(status InitializationStatus, errorMessage string)

// ConsentDialogState tells whether GDPR applies to the current user.
type ConsentDialogState int

const (
	ConsentDialogStateUnknown ConsentDialogState = iota
	ConsentDialogStateApplies
	ConsentDialogStateDoesNotApply
)

func (s ConsentDialogState) String() string {
	switch s {
	case ConsentDialogStateApplies:
		return "APPLIES"
	case ConsentDialogStateDoesNotApply:
		return "DOES_NOT_APPLY"
	}
	return "UNKNOWN"
}

// ImageFetcher downloads an image asset.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// SDK is the part of the wrapping mediation SDK that adapters call into.
type SDK interface {
	ImageFetcher

	// ConsentDialogState is read from the SDK configuration at call time.
	ConsentDialogState() ConsentDialogState

	// RunOnUIThread schedules fn on the thread that owns the host views.
	RunOnUIThread(fn func())
}

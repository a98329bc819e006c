package gdpr

import (
	"github.com/prebid/bidmachine-max-adapter/max"
)

type Signal int

const (
	SignalAmbiguous Signal = -1
	SignalNo        Signal = 0
	SignalYes       Signal = 1
)

// SignalFromDialogState maps the host's consent dialog state to a GDPR applicability signal.
func SignalFromDialogState(state max.ConsentDialogState) Signal {
	switch state {
	case max.ConsentDialogStateApplies:
		return SignalYes
	case max.ConsentDialogStateDoesNotApply:
		return SignalNo
	}
	return SignalAmbiguous
}

package bidmachine

import (
	"sync/atomic"

	"github.com/prebid/bidmachine-max-adapter/max"
)

// listenerBase is embedded by every translating listener. Once detached, SDK callbacks are
// dropped instead of reaching the host.
type listenerBase struct {
	adapter  *MediationAdapter
	detached atomic.Bool
}

func (l *listenerBase) detach() {
	l.detached.Store(true)
}

func (l *listenerBase) active(event string) bool {
	if l.detached.Load() {
		l.adapter.log("Ignoring %s callback for destroyed ad", event)
		return false
	}
	return true
}

// showable is the part of a full screen ad consulted before showing it.
type showable interface {
	IsExpired() bool
	CanShow() bool
}

// showPrecondition returns the error to report instead of showing ad, or nil if ad may be shown.
func (a *MediationAdapter) showPrecondition(ad showable, label string) *max.AdapterError {
	if ad == nil {
		a.log("Unable to show %s - no ad loaded", label)
		return max.AdNotReady
	}
	if ad.IsExpired() {
		a.log("Unable to show %s - ad expired", label)
		return max.AdExpired
	}
	if !ad.CanShow() {
		a.log("Unable to show %s - ad not ready", label)
		return max.AdDisplayFailed
	}
	return nil
}

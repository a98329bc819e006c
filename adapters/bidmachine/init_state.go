package bidmachine

import (
	"sync/atomic"

	"github.com/prebid/bidmachine-max-adapter/max"
)

// initState tracks BidMachine SDK initialization for the whole process. Only the caller that
// wins tryBeginInit may initialize the SDK.
type initState struct {
	current atomic.Int32
}

var sdkInitState = &initState{}

func (s *initState) tryBeginInit() bool {
	return s.current.CompareAndSwap(int32(max.InitializationStatusUninitialized), int32(max.InitializationStatusInitializing))
}

func (s *initState) markSuccess() {
	s.current.Store(int32(max.InitializationStatusInitializedSuccess))
}

func (s *initState) markFailure() {
	s.current.Store(int32(max.InitializationStatusInitializedFailure))
}

func (s *initState) status() max.InitializationStatus {
	return max.InitializationStatus(s.current.Load())
}

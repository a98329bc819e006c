package metrics

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MetricsEngineMock is mock for the MetricsEngine interface
type MetricsEngineMock struct {
	mock.Mock
}

// RecordInitialization mock
func (me *MetricsEngineMock) RecordInitialization(status InitStatus) {
	me.Called(status)
}

// RecordSignalCollection mock
func (me *MetricsEngineMock) RecordSignalCollection(success bool) {
	me.Called(success)
}

// RecordAdLoad mock
func (me *MetricsEngineMock) RecordAdLoad(labels AdLabels) {
	me.Called(labels)
}

// RecordAdShow mock
func (me *MetricsEngineMock) RecordAdShow(labels AdLabels) {
	me.Called(labels)
}

// RecordReward mock
func (me *MetricsEngineMock) RecordReward(granted bool) {
	me.Called(granted)
}

// RecordImageFetch mock
func (me *MetricsEngineMock) RecordImageFetch(outcome ImageFetchOutcome, length time.Duration) {
	me.Called(outcome, length)
}

package metrics

import (
	"fmt"
	"time"

	"github.com/prebid/bidmachine-max-adapter/config"
	metrics "github.com/rcrowley/go-metrics"
)

// Metrics is the go-metrics implementation of MetricsEngine.
type Metrics struct {
	MetricsRegistry metrics.Registry

	InitMeter map[InitStatus]metrics.Meter

	SignalSuccessMeter metrics.Meter
	SignalFailureMeter metrics.Meter

	RewardGrantedMeter metrics.Meter
	RewardSkippedMeter metrics.Meter

	ImageFetchMeter map[ImageFetchOutcome]metrics.Meter
	ImageFetchTimer metrics.Timer

	AdFormatMetrics map[AdFormat]*AdFormatMetrics

	metricsDisabled config.DisabledMetrics
}

// AdFormatMetrics groups the load and show meters of one ad format.
type AdFormatMetrics struct {
	LoadMeter map[Outcome]metrics.Meter
	ShowMeter map[Outcome]metrics.Meter
}

// NewBlankMetrics creates a new Metrics object with all blank metrics object. This may also be useful for
// testing routines to ensure that no metrics are written anywhere.
func NewBlankMetrics(registry metrics.Registry, disabledMetrics config.DisabledMetrics) *Metrics {
	newMetrics := &Metrics{
		MetricsRegistry:    registry,
		InitMeter:          make(map[InitStatus]metrics.Meter),
		SignalSuccessMeter: blankMeter,
		SignalFailureMeter: blankMeter,
		RewardGrantedMeter: blankMeter,
		RewardSkippedMeter: blankMeter,
		ImageFetchMeter:    make(map[ImageFetchOutcome]metrics.Meter),
		ImageFetchTimer:    &metrics.NilTimer{},
		AdFormatMetrics:    make(map[AdFormat]*AdFormatMetrics),
		metricsDisabled:    disabledMetrics,
	}

	for _, s := range InitStatuses() {
		newMetrics.InitMeter[s] = blankMeter
	}
	for _, o := range ImageFetchOutcomes() {
		newMetrics.ImageFetchMeter[o] = blankMeter
	}
	for _, f := range AdFormats() {
		am := &AdFormatMetrics{
			LoadMeter: make(map[Outcome]metrics.Meter),
			ShowMeter: make(map[Outcome]metrics.Meter),
		}
		for _, o := range Outcomes() {
			am.LoadMeter[o] = blankMeter
			am.ShowMeter[o] = blankMeter
		}
		newMetrics.AdFormatMetrics[f] = am
	}

	return newMetrics
}

var blankMeter = &metrics.NilMeter{}

// NewMetrics creates a new Metrics object with needed metrics defined. In time we may develop to the point
// where Metrics contains all the metrics we might want to record, and then we build the actual
// metrics object to contain only the metrics we are interested in. This would allow for debug
// mode metrics. The code would allways try to record the metrics, but effectively noop if we are
// using a blank meter/timer.
func NewMetrics(registry metrics.Registry, disabledMetrics config.DisabledMetrics) *Metrics {
	newMetrics := NewBlankMetrics(registry, disabledMetrics)

	for _, s := range InitStatuses() {
		newMetrics.InitMeter[s] = metrics.GetOrRegisterMeter(fmt.Sprintf("init.%s", s), registry)
	}

	newMetrics.SignalSuccessMeter = metrics.GetOrRegisterMeter("signal.success", registry)
	newMetrics.SignalFailureMeter = metrics.GetOrRegisterMeter("signal.failure", registry)
	newMetrics.RewardGrantedMeter = metrics.GetOrRegisterMeter("reward.granted", registry)
	newMetrics.RewardSkippedMeter = metrics.GetOrRegisterMeter("reward.skipped", registry)

	for _, o := range ImageFetchOutcomes() {
		newMetrics.ImageFetchMeter[o] = metrics.GetOrRegisterMeter(fmt.Sprintf("image_fetch.%s", o), registry)
	}
	if !disabledMetrics.ImageFetch {
		newMetrics.ImageFetchTimer = metrics.GetOrRegisterTimer("image_fetch.time", registry)
	}

	for _, f := range AdFormats() {
		am := newMetrics.AdFormatMetrics[f]
		for _, o := range Outcomes() {
			am.LoadMeter[o] = metrics.GetOrRegisterMeter(fmt.Sprintf("adformat.%s.load.%s", f, o), registry)
			am.ShowMeter[o] = metrics.GetOrRegisterMeter(fmt.Sprintf("adformat.%s.show.%s", f, o), registry)
		}
	}

	return newMetrics
}

func (me *Metrics) RecordInitialization(status InitStatus) {
	if m, ok := me.InitMeter[status]; ok {
		m.Mark(1)
	}
}

func (me *Metrics) RecordSignalCollection(success bool) {
	if success {
		me.SignalSuccessMeter.Mark(1)
	} else {
		me.SignalFailureMeter.Mark(1)
	}
}

func (me *Metrics) RecordAdLoad(labels AdLabels) {
	am, ok := me.AdFormatMetrics[labels.AdFormat]
	if !ok {
		return
	}
	if m, ok := am.LoadMeter[labels.Outcome]; ok {
		m.Mark(1)
	}
}

func (me *Metrics) RecordAdShow(labels AdLabels) {
	am, ok := me.AdFormatMetrics[labels.AdFormat]
	if !ok {
		return
	}
	if m, ok := am.ShowMeter[labels.Outcome]; ok {
		m.Mark(1)
	}
}

func (me *Metrics) RecordReward(granted bool) {
	if granted {
		me.RewardGrantedMeter.Mark(1)
	} else {
		me.RewardSkippedMeter.Mark(1)
	}
}

func (me *Metrics) RecordImageFetch(outcome ImageFetchOutcome, length time.Duration) {
	if m, ok := me.ImageFetchMeter[outcome]; ok {
		m.Mark(1)
	}
	me.ImageFetchTimer.Update(length)
}

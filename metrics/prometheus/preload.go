package prometheusmetrics

import (
	"strconv"

	"github.com/prebid/bidmachine-max-adapter/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// preloadLabelValues touches every label combination so series exist at zero before the first event.
func preloadLabelValues(m *Metrics) {
	var (
		adFormatValues   = adFormatsAsString()
		boolValues       = []string{strconv.FormatBool(true), strconv.FormatBool(false)}
		initStatusValues = initStatusesAsString()
		outcomeValues    = outcomesAsString()
		fetchValues      = imageFetchOutcomesAsString()
	)

	preloadLabelValuesForCounter(m.initializations, map[string][]string{
		statusLabel: initStatusValues,
	})

	preloadLabelValuesForCounter(m.signalCollections, map[string][]string{
		successLabel: boolValues,
	})

	preloadLabelValuesForCounter(m.adLoads, map[string][]string{
		adFormatLabel: adFormatValues,
		outcomeLabel:  outcomeValues,
	})

	preloadLabelValuesForCounter(m.adShows, map[string][]string{
		adFormatLabel: adFormatValues,
		outcomeLabel:  outcomeValues,
	})

	preloadLabelValuesForCounter(m.rewards, map[string][]string{
		grantedLabel: boolValues,
	})

	preloadLabelValuesForCounter(m.imageFetches, map[string][]string{
		outcomeLabel: fetchValues,
	})

	if m.imageFetchTimer != nil {
		preloadLabelValuesForHistogram(m.imageFetchTimer, map[string][]string{
			outcomeLabel: fetchValues,
		})
	}
}

func preloadLabelValuesForCounter(counter *prometheus.CounterVec, labelsWithValues map[string][]string) {
	registerLabelPermutations(labelsWithValues, func(labels prometheus.Labels) {
		counter.With(labels)
	})
}

func preloadLabelValuesForHistogram(histogram *prometheus.HistogramVec, labelsWithValues map[string][]string) {
	registerLabelPermutations(labelsWithValues, func(labels prometheus.Labels) {
		histogram.With(labels)
	})
}

func registerLabelPermutations(labelsWithValues map[string][]string, register func(prometheus.Labels)) {
	if len(labelsWithValues) == 0 {
		return
	}

	keys := make([]string, 0, len(labelsWithValues))
	values := make([][]string, 0, len(labelsWithValues))
	for k, v := range labelsWithValues {
		keys = append(keys, k)
		values = append(values, v)
	}

	labels := prometheus.Labels{}
	registerLabelPermutationsRecursive(0, keys, values, labels, register)
}

func registerLabelPermutationsRecursive(depth int, keys []string, values [][]string, labels prometheus.Labels, register func(prometheus.Labels)) {
	label := keys[depth]
	isLeaf := depth == len(keys)-1

	if isLeaf {
		for _, v := range values[depth] {
			labels[label] = v
			register(cloneLabels(labels))
		}
	} else {
		for _, v := range values[depth] {
			labels[label] = v
			registerLabelPermutationsRecursive(depth+1, keys, values, labels, register)
		}
	}
}

func cloneLabels(labels prometheus.Labels) prometheus.Labels {
	clone := prometheus.Labels{}
	for k, v := range labels {
		clone[k] = v
	}
	return clone
}

func adFormatsAsString() []string {
	values := metrics.AdFormats()
	valuesAsString := make([]string, len(values))
	for i, v := range values {
		valuesAsString[i] = string(v)
	}
	return valuesAsString
}

func outcomesAsString() []string {
	values := metrics.Outcomes()
	valuesAsString := make([]string, len(values))
	for i, v := range values {
		valuesAsString[i] = string(v)
	}
	return valuesAsString
}

func initStatusesAsString() []string {
	values := metrics.InitStatuses()
	valuesAsString := make([]string, len(values))
	for i, v := range values {
		valuesAsString[i] = string(v)
	}
	return valuesAsString
}

func imageFetchOutcomesAsString() []string {
	values := metrics.ImageFetchOutcomes()
	valuesAsString := make([]string, len(values))
	for i, v := range values {
		valuesAsString[i] = string(v)
	}
	return valuesAsString
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Conversion outcomes per direction
	converterConversionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "openassets",
			Subsystem: "converter",
			Name:      "conversions_total",
			Help:      "Total number of address conversions by direction and result",
		},
		[]string{"direction", "result"}, // to_asset/to_base, ok/malformed/unsupported_payload/...
	)
)

// ConverterMetrics provides methods to update converter-related metrics
type ConverterMetrics struct{}

// NewConverterMetrics creates a new instance of ConverterMetrics
func NewConverterMetrics() *ConverterMetrics {
	return &ConverterMetrics{}
}

// RecordConversion counts one conversion attempt
func (cm *ConverterMetrics) RecordConversion(direction, result string) {
	converterConversionsTotal.WithLabelValues(direction, result).Inc()
}

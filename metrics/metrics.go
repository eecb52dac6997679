// Package metrics exposes Prometheus counters for the attendance tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation labels.
const (
	OpAdd    = "add_subject"
	OpMissed = "set_missed"
	OpClear  = "clear_all"
)

// Decode sources.
const (
	SourceQuery   = "query"
	SourceSession = "session"
)

var (
	storeOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "attendance_operations_total",
		Help:      "Attendance store mutations by operation and result.",
	}, []string{"operation", "result"})

	decodeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "subjects_decode_errors_total",
		Help:      "Serialized stores that failed to decode, by source.",
	}, []string{"source"})
)

// ObserveOperation counts one store mutation; err decides the result label.
func ObserveOperation(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	storeOperations.WithLabelValues(op, result).Inc()
}

// ObserveDecodeError counts a serialized store that could not be loaded.
func ObserveDecodeError(source string) {
	decodeErrors.WithLabelValues(source).Inc()
}

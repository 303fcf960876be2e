package v1

import "github.com/prometheus/client_golang/prometheus"

var footprintCalculations = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "footprint_calculations_total",
		Help: "How many footprints were calculated without saving them.",
	},
)

var dailyRecordsSaved = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "daily_records_saved_total",
		Help: "How many daily records were created or replaced.",
	},
)

// Metrics returns the collectors of the v1 API.
func Metrics() []prometheus.Collector {
	return []prometheus.Collector{
		footprintCalculations,
		dailyRecordsSaved,
	}
}

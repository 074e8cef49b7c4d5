package repositories

import (
	"time"

	"elite-hub/treinador/internal/metrics"
)

// record feeds the DB metrics after a repository call. Registry may be nil
// in tests.
func record(reg *metrics.MetricsRegistry, queryType string, start time.Time, err error) {
	if reg == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	reg.DBQueriesTotal.WithLabelValues(queryType, result).Inc()
	reg.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}
